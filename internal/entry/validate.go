package entry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation failures. Each is reported wrapped in a *ValidationError.
var (
	ErrEmptyEmployee   = errors.New("you must enter your name")
	ErrEmptyTaskName   = errors.New("you must enter a task name")
	ErrInvalidDuration = errors.New("not a valid time entry, enter time as a whole integer")
)

// ValidationError reports which field of an entry was rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateEmployee rejects an empty employee name.
func ValidateEmployee(s string) error {
	if s == "" {
		return &ValidationError{Field: "employee", Err: ErrEmptyEmployee}
	}
	return nil
}

// ValidateTaskName rejects an empty task name.
func ValidateTaskName(s string) error {
	if s == "" {
		return &ValidationError{Field: "task_name", Err: ErrEmptyTaskName}
	}
	return nil
}

// ValidateDuration accepts any string strconv.Atoi accepts once surrounding
// whitespace is trimmed.
func ValidateDuration(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return &ValidationError{Field: "duration", Err: ErrInvalidDuration}
	}
	return nil
}

// ValidateNotes always succeeds; notes may be empty.
func ValidateNotes(string) error {
	return nil
}

// Validate checks every field of e and returns the first failure.
func Validate(e Entry) error {
	if err := ValidateEmployee(e.Employee); err != nil {
		return err
	}
	if err := ValidateTaskName(e.TaskName); err != nil {
		return err
	}
	return ValidateDuration(e.Duration)
}

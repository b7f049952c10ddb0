// Package entry defines the work-log record and the rules a record must
// satisfy before it is persisted.
package entry

import (
	"strings"
	"time"
)

// TimestampLayout is the canonical text form of an entry timestamp.
// Timestamps are stored, ordered and matched in this form, always in UTC.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// DisplayLayout is the human-readable form used in menus and entry views.
const DisplayLayout = "Monday January 02, 2006 03:04PM"

// Entry represents a single work-log record
type Entry struct {
	ID        string    `json:"id"`
	Employee  string    `json:"employee"`
	TaskName  string    `json:"task_name"`
	Duration  string    `json:"duration"` // whole minutes, kept as text
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

// New builds an unsaved entry. Duration is trimmed; the other fields are kept
// as typed. The timestamp is left zero so the store assigns it on insert.
func New(employee, taskName, duration, notes string) Entry {
	return Entry{
		Employee: employee,
		TaskName: taskName,
		Duration: strings.TrimSpace(duration),
		Notes:    notes,
	}
}

// CanonicalTimestamp formats t in the canonical storage form.
func CanonicalTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a canonical timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}

// Normalize returns t in UTC truncated to the precision of the canonical form.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Field names one column of an entry.
type Field int

const (
	FieldEmployee Field = iota
	FieldTaskName
	FieldDuration
	FieldNotes
	FieldTimestamp
)

// Column returns the store column backing f.
func (f Field) Column() string {
	switch f {
	case FieldEmployee:
		return "employee"
	case FieldTaskName:
		return "task_name"
	case FieldDuration:
		return "duration"
	case FieldNotes:
		return "notes"
	case FieldTimestamp:
		return "timestamp"
	default:
		return ""
	}
}

func (f Field) String() string {
	return f.Column()
}

// Value returns the text value of field f, as used for matching.
// Timestamps yield their canonical form.
func (e Entry) Value(f Field) string {
	switch f {
	case FieldEmployee:
		return e.Employee
	case FieldTaskName:
		return e.TaskName
	case FieldDuration:
		return e.Duration
	case FieldNotes:
		return e.Notes
	case FieldTimestamp:
		return CanonicalTimestamp(e.Timestamp)
	}
	return ""
}

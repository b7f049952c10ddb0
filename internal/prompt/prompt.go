// Package prompt implements the line-based questions asked by the REPL:
// free-text fields, bounded menu selections and yes/no confirmations.
//
// Every question runs the same small state machine. A prompt waits for a
// line (awaiting), parses it, and either finishes (valid) or reports the
// problem and waits again (invalid). Interactive sessions retry forever;
// scripted drivers set MaxAttempts so exhausted input cannot spin.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmptyChoice is returned by SelectIndex when there is nothing to choose.
	ErrEmptyChoice = errors.New("no choices available")
	// ErrQuit is returned when the user types the quit sentinel at a menu.
	ErrQuit = errors.New("quit")
	// ErrTooManyAttempts is returned once MaxAttempts invalid answers were given.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
	// ErrInvalidSelection is reported for a non-numeric or out-of-range choice.
	ErrInvalidSelection = errors.New("invalid selection, please select a number")
)

// QuitKey is the sentinel that backs out of a menu.
const QuitKey = "q"

// Selector obtains a menu index in [0, bound).
type Selector interface {
	SelectIndex(bound int) (int, error)
}

type state int

const (
	stateAwaiting state = iota
	stateValid
	stateInvalid
)

// Prompter reads answers from In and writes questions to Out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// MaxAttempts caps the lines read by one question. Zero means unbounded.
	MaxAttempts int
}

// New creates a Prompter. The reader is buffered once and shared by every
// question so no input is lost between prompts.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Out returns the writer questions are printed to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Line prints label and returns the next input line without its line ending.
// It returns io.EOF once input is exhausted.
func (p *Prompter) Line(label string) (string, error) {
	if label != "" {
		_, _ = fmt.Fprint(p.out, label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask repeats label until parse accepts a line. A parse error wrapping
// ErrQuit ends the question immediately; any other parse error is shown to
// the user before asking again.
func Ask[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	var value T
	attempts := 0
	st := stateAwaiting

	for {
		switch st {
		case stateAwaiting:
			if p.MaxAttempts > 0 && attempts >= p.MaxAttempts {
				var zero T
				return zero, ErrTooManyAttempts
			}
			attempts++

			line, err := p.Line(label)
			if err != nil {
				var zero T
				return zero, err
			}

			v, err := parse(line)
			switch {
			case err == nil:
				value = v
				st = stateValid
			case errors.Is(err, ErrQuit):
				var zero T
				return zero, err
			default:
				p.Notice(err)
				st = stateInvalid
			}

		case stateInvalid:
			st = stateAwaiting

		case stateValid:
			return value, nil
		}
	}
}

// Notice prints err as a sentence on its own paragraph.
func (p *Prompter) Notice(err error) {
	_, _ = fmt.Fprintf(p.out, "\n%s\n\n", sentence(err.Error()))
}

// SelectIndex asks for a number in [0, bound). Typing QuitKey returns
// ErrQuit. With bound <= 0 it returns ErrEmptyChoice without reading.
func (p *Prompter) SelectIndex(bound int) (int, error) {
	if bound <= 0 {
		return 0, ErrEmptyChoice
	}

	return Ask(p, "> ", func(s string) (int, error) {
		s = strings.TrimSpace(s)
		if strings.EqualFold(s, QuitKey) {
			return 0, ErrQuit
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n >= bound {
			return 0, ErrInvalidSelection
		}
		return n, nil
	})
}

// Confirm asks a yes/no question. Only "y" (any case, surrounding spaces
// ignored) confirms; every other answer, including end of input, declines.
func (p *Prompter) Confirm(label string) (bool, error) {
	line, err := p.Line(label)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// sentence upper-cases the first letter of s and ends it with a period.
func sentence(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") {
		s += "."
	}
	return s
}

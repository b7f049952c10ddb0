// Package logging builds the structured logger shared by the commands and
// services.
package logging

import (
	"io"
	"log/slog"
)

// Component keys attached to log records.
const (
	ComponentKey = "component"
	OperationKey = "operation"
)

// New returns a text logger writing to w. Only warnings and errors are
// emitted unless verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// For returns l tagged with the given component name. A nil l yields Discard.
func For(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With(ComponentKey, component)
}

// Package cli provides the CLI presentation layer for the worklog application.
// It handles terminal output formatting and the dependencies shared by the
// REPL handlers.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/service"
)

// FormatDuration formats minutes as a human-readable string
// Examples: "30m", "2h", "1h 30m"
func FormatDuration(minutes int) string {
	if minutes < 0 {
		return "-" + FormatDuration(-minutes)
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatMinutes renders a stored duration. Values that are not integers
// are shown as stored.
func FormatMinutes(duration string) string {
	n, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return duration
	}
	if n < 60 && n > -60 {
		return fmt.Sprintf("%d %s", n, Pluralize("minute", abs(n)))
	}
	return fmt.Sprintf("%d minutes (%s)", n, FormatDuration(n))
}

// FormatEntry formats an entry as the labelled block shown while browsing.
func FormatEntry(e entry.Entry, loc *time.Location, st Styles) string {
	if loc == nil {
		loc = time.Local
	}

	rows := []struct{ label, value string }{
		{"Date", e.Timestamp.In(loc).Format(entry.DisplayLayout)},
		{"Employee", e.Employee},
		{"Task", e.TaskName},
		{"Duration", FormatMinutes(e.Duration)},
		{"Notes", e.Notes},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString("    ")
		b.WriteString(st.Label.Render(r.label + ":"))
		if r.value != "" {
			b.WriteString(" ")
			b.WriteString(r.value)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatChoice formats one numbered menu line
func FormatChoice(i int, c service.Choice, st Styles) string {
	return fmt.Sprintf("%s %s", st.Key.Render(fmt.Sprintf("%d)", i)), c.Label)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

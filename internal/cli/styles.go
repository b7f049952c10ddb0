package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of the REPL screens
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Key     lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles returns styles rendered for w. Writers that are not terminals
// get plain text.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(primary),
		Label:   r.NewStyle().Bold(true),
		Key:     r.NewStyle().Foreground(secondary),
		Muted:   r.NewStyle().Foreground(muted),
		Success: r.NewStyle().Foreground(success),
		Error:   r.NewStyle().Foreground(errorColor),
	}
}

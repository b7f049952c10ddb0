package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the browser
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Table
	TableHeader   lipgloss.Style
	TableCell     lipgloss.Style
	TableSelected lipgloss.Style

	// Entry details
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default browser styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Content area
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// Table
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted).
			BorderBottom(true).
			Bold(true).
			Padding(0, 1),
		TableCell: lipgloss.NewStyle().
			Padding(0, 1),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(primary).
			Bold(true),

		// Entry details
		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Bold(true),
		StatValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warning).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}

// TableStyles returns the bubbles table styles matching s
func (s Styles) TableStyles() table.Styles {
	return table.Styles{
		Header:   s.TableHeader,
		Cell:     s.TableCell,
		Selected: s.TableSelected,
	}
}

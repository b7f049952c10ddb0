// Package tui provides the full-screen entry browser of the worklog
// application.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/tui/ui"
	"github.com/xolan/worklog/internal/tui/views"
)

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	width    int
	height   int
	showHelp bool

	// View models
	entriesView views.EntriesModel

	styles ui.Styles
	keys   ui.KeyMap
}

// New creates a new TUI model. Dates are shown in loc.
func New(services *service.Services, loc *time.Location) Model {
	styles := ui.DefaultStyles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:    services,
		styles:      styles,
		keys:        keys,
		entriesView: views.NewEntriesModel(services, loc, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.entriesView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		confirming := m.entriesView.IsInputMode()

		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit) && !confirming:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !confirming:
			m.showHelp = !m.showHelp
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for padding and status bar
		m.entriesView.SetSize(m.width-4, contentHeight)
		return m, nil
	}

	m.entriesView, cmd = m.entriesView.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder
	b.WriteString(m.entriesView.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.entriesView.IsInputMode() {
		parts = append(parts, m.renderKeyHelp(m.keys.Confirm))
		parts = append(parts, m.renderKeyHelp(m.keys.Cancel))
	} else {
		for _, b := range m.keys.ShortHelp() {
			parts = append(parts, m.renderKeyHelp(b))
		}
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - 4 - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(h.Key),
		m.styles.StatusHelp.Render(h.Desc))
}

// renderHelpOverlay renders the keyboard reference
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")
	help.WriteString("  j/k        Navigate up/down\n")
	help.WriteString("  g/G        First/last entry\n")
	help.WriteString("  d          Delete entry\n")
	help.WriteString("  y/n        Confirm/cancel delete\n")
	help.WriteString("  r          Refresh\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services, loc *time.Location) error {
	model := New(services, loc)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

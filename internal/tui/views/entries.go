// Package views holds the screens of the entry browser.
package views

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/storage"
	"github.com/xolan/worklog/internal/tui/ui"
)

type entriesMode int

const (
	entryModeNormal entriesMode = iota
	entryModeDelete
)

// Column widths of the entries table
const (
	dateWidth     = 20
	employeeWidth = 16
	taskWidth     = 24
	minutesWidth  = 8
	notesWidth    = 30
)

// EntriesModel is the table of all entries, newest first
type EntriesModel struct {
	services *service.Services
	loc      *time.Location
	styles   ui.Styles
	keys     ui.KeyMap

	table   table.Model
	entries []entry.Entry
	mode    entriesMode
	status  string
	err     error
}

// NewEntriesModel creates the entries view
func NewEntriesModel(services *service.Services, loc *time.Location, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	if loc == nil {
		loc = time.Local
	}

	t := table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithKeyMap(keys.TableKeyMap()),
	)
	t.SetStyles(styles.TableStyles())

	return EntriesModel{
		services: services,
		loc:      loc,
		styles:   styles,
		keys:     keys,
		table:    t,
	}
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: dateWidth},
		{Title: "Employee", Width: employeeWidth},
		{Title: "Task", Width: taskWidth},
		{Title: "Minutes", Width: minutesWidth},
		{Title: "Notes", Width: notesWidth},
	}
}

// entriesLoadedMsg is sent when entries are loaded
type entriesLoadedMsg struct {
	entries []entry.Entry
	status  string
	err     error
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.loadEntries("")
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.status = msg.status
		m.err = msg.err
		if msg.err == nil {
			m.setEntries(msg.entries)
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == entryModeDelete {
			return m.handleDeleteMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Delete):
			if _, ok := m.Selected(); ok {
				m.mode = entryModeDelete
				m.status = ""
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadEntries("")
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m EntriesModel) handleDeleteMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = entryModeNormal
		if e, ok := m.Selected(); ok {
			return m, m.deleteEntry(e)
		}
	case key.Matches(msg, m.keys.Cancel):
		m.mode = entryModeNormal
	}
	return m, nil
}

// setEntries replaces the table rows, keeping the cursor in range
func (m *EntriesModel) setEntries(entries []entry.Entry) {
	m.entries = entries

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			e.Timestamp.In(m.loc).Format("2006-01-02 03:04PM"),
			truncate(e.Employee, employeeWidth),
			truncate(e.TaskName, taskWidth),
			e.Duration,
			truncate(firstLine(e.Notes), notesWidth),
		}
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the highlighted entry
func (m EntriesModel) Selected() (entry.Entry, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.entries) {
		return entry.Entry{}, false
	}
	return m.entries[c], true
}

// Entries returns the entries currently shown
func (m EntriesModel) Entries() []entry.Entry {
	return m.entries
}

// Status returns the last status line and error
func (m EntriesModel) Status() (string, error) {
	return m.status, m.err
}

// SetSize updates the table dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.table.SetWidth(width)
	// title, detail block and status line
	if h := height - 10; h > 3 {
		m.table.SetHeight(h)
	}
}

// IsInputMode returns true when the view is waiting for a confirmation
func (m EntriesModel) IsInputMode() bool {
	return m.mode == entryModeDelete
}

// View implements tea.Model
func (m EntriesModel) View() string {
	if m.mode == entryModeDelete {
		return m.renderDeleteConfirm()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Entries (%d)", len(m.entries))))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No entries yet. Add one from the worklog menu."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n\n")
		if e, ok := m.Selected(); ok {
			b.WriteString(m.renderDetails(e))
		}
	}

	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render(m.status))
	}
	return b.String()
}

func (m EntriesModel) renderDetails(e entry.Entry) string {
	var b strings.Builder
	fields := []struct{ label, value string }{
		{"Date:     ", e.Timestamp.In(m.loc).Format(entry.DisplayLayout)},
		{"Employee: ", e.Employee},
		{"Task:     ", e.TaskName},
		{"Duration: ", e.Duration},
		{"Notes:    ", e.Notes},
	}
	for _, f := range fields {
		b.WriteString(m.styles.StatLabel.Render(f.label))
		b.WriteString(m.styles.StatValue.Render(f.value))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m EntriesModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if e, ok := m.Selected(); ok {
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this entry?"))
		b.WriteString("\n\n")
		b.WriteString(m.renderDetails(e))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Press Y to confirm, N or Esc to cancel"))
	return m.styles.Dialog.Render(b.String())
}

// loadEntries creates a command to load entries
func (m EntriesModel) loadEntries(status string) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.services.Query.All()
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		return entriesLoadedMsg{entries: entries, status: status}
	}
}

// deleteEntry creates a command to delete an entry
func (m EntriesModel) deleteEntry(e entry.Entry) tea.Cmd {
	reload := m.loadEntries
	return func() tea.Msg {
		status := "Entry deleted!"
		if err := m.services.Entry.Delete(e); err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				return entriesLoadedMsg{err: err}
			}
			status = "Entry already removed."
		}
		// Reload entries after deleting
		return reload(status)()
	}
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

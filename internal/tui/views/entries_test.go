package views

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/storage"
	"github.com/xolan/worklog/internal/tui/ui"
)

func setupEntriesModel(t *testing.T, employees ...string) (EntriesModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "worklog.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	for i, name := range employees {
		e := entry.New(name, "Task", "30", "first line\nsecond line")
		e.Timestamp = base.Add(time.Duration(i) * time.Minute)
		if _, err := store.Insert(e); err != nil {
			t.Fatal(err)
		}
	}

	services := service.NewServices(store, config.DefaultConfig(), nil)
	m := NewEntriesModel(services, time.UTC, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.Init()())
	return m, store
}

func TestEntriesModel_Load(t *testing.T) {
	m, _ := setupEntriesModel(t, "Jane", "John")

	if len(m.Entries()) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m.Entries()))
	}
	e, ok := m.Selected()
	if !ok || e.Employee != "John" {
		t.Errorf("expected newest entry selected, got %+v", e)
	}

	rows := m.table.Rows()
	if rows[0][0] != "2024-03-04 09:01AM" {
		t.Errorf("unexpected date cell %q", rows[0][0])
	}
	if rows[0][4] != "first line" {
		t.Errorf("expected first line of notes, got %q", rows[0][4])
	}
}

func TestEntriesModel_LoadError(t *testing.T) {
	m, _ := setupEntriesModel(t, "Jane")

	m, _ = m.Update(entriesLoadedMsg{err: errors.New("boom")})
	if _, err := m.Status(); err == nil {
		t.Fatal("expected error to be kept")
	}
	if len(m.Entries()) != 1 {
		t.Error("expected previous entries to be kept on error")
	}
	if !strings.Contains(m.View(), "Error: boom") {
		t.Error("expected error in view")
	}
}

func TestEntriesModel_DeleteAlreadyRemoved(t *testing.T) {
	m, store := setupEntriesModel(t, "Jane")

	e, _ := m.Selected()
	if err := store.DeleteByID(e.ID); err != nil {
		t.Fatal(err)
	}

	msg := m.deleteEntry(e)()
	m, _ = m.Update(msg)

	status, err := m.Status()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "Entry already removed." {
		t.Errorf("unexpected status %q", status)
	}
	if len(m.Entries()) != 0 {
		t.Error("expected reload to show no entries")
	}
}

func TestEntriesModel_CursorClampedAfterShrink(t *testing.T) {
	m, _ := setupEntriesModel(t, "Jane", "John", "Mary")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if m.table.Cursor() != 2 {
		t.Fatalf("expected cursor on last row, got %d", m.table.Cursor())
	}

	m.setEntries(m.Entries()[:1])
	if m.table.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.table.Cursor())
	}
}

func TestEntriesModel_Refresh(t *testing.T) {
	m, store := setupEntriesModel(t, "Jane")

	if _, err := store.Insert(entry.New("John", "Task", "5", "")); err != nil {
		t.Fatal(err)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	m, _ = m.Update(cmd())
	if len(m.Entries()) != 2 {
		t.Errorf("expected 2 entries after refresh, got %d", len(m.Entries()))
	}
}

func TestEntriesModel_EmptyView(t *testing.T) {
	m, _ := setupEntriesModel(t)

	if !strings.Contains(m.View(), "No entries yet") {
		t.Error("expected empty-state message")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"ab", 1, "a"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

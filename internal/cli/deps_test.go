package cli

import (
	"bytes"
	"testing"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/service"
)

func TestNewDeps(t *testing.T) {
	cfg := config.DefaultConfig()
	services := &service.Services{}

	deps := NewDeps(services, cfg, nil)
	if deps == nil {
		t.Fatal("expected non-nil deps")
	}
	if deps.Services != services {
		t.Error("expected services to match")
	}
	if deps.Stdout == nil {
		t.Error("expected non-nil Stdout")
	}
	if deps.Stderr == nil {
		t.Error("expected non-nil Stderr")
	}
	if deps.Stdin == nil {
		t.Error("expected non-nil Stdin")
	}
	if deps.Exit == nil {
		t.Error("expected non-nil Exit")
	}
	if deps.Logger == nil {
		t.Error("expected non-nil Logger")
	}
}

func TestDeps_ClearScreen(t *testing.T) {
	calls := 0
	d := &Deps{Clear: func() { calls++ }}
	d.ClearScreen()
	if calls != 1 {
		t.Errorf("expected Clear to be called once, got %d", calls)
	}

	// nil Clear is a no-op
	(&Deps{}).ClearScreen()
}

func TestClearScreen(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"enabled but not a terminal", true},
		{"disabled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if fn := ClearScreen(&buf, tt.enabled); fn != nil {
				t.Error("expected nil clear function for a buffer")
			}
			if buf.Len() != 0 {
				t.Errorf("expected no output, got %q", buf.String())
			}
		})
	}
}

func TestNewStyles_PlainForBuffers(t *testing.T) {
	st := NewStyles(&bytes.Buffer{})
	if got := st.Title.Render("Worklog"); got != "Worklog" {
		t.Errorf("expected unstyled output for a buffer, got %q", got)
	}
}

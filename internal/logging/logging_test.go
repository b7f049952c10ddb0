package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug/info should be suppressed, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected warning in output, got %q", out)
	}
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Debug("opened store", "path", "/tmp/x.db")

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "path=/tmp/x.db") {
		t.Errorf("expected debug record with attrs, got %q", out)
	}
}

func TestFor(t *testing.T) {
	var buf bytes.Buffer
	For(New(&buf, false), "storage").Error("boom")

	if !strings.Contains(buf.String(), "component=storage") {
		t.Errorf("expected component attr, got %q", buf.String())
	}

	// nil logger must be usable
	For(nil, "storage").Error("dropped")
}

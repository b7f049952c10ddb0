package filter

import (
	"testing"
	"time"

	"github.com/xolan/worklog/internal/entry"
)

// Helper function to create test entries
func makeEntry(employee, task, notes string) entry.Entry {
	return entry.Entry{
		ID:        employee + "/" + task,
		Employee:  employee,
		TaskName:  task,
		Duration:  "30",
		Notes:     notes,
		Timestamp: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name          string
		needle        string
		value         string
		caseSensitive bool
		want          bool
	}{
		{"exact", "Jane", "Jane", false, true},
		{"substring", "an", "Jane", false, true},
		{"case-insensitive", "jane", "JANE DOE", false, true},
		{"case-sensitive miss", "jane", "Jane", true, false},
		{"case-sensitive hit", "Jan", "Jane", true, true},
		{"empty needle matches", "", "anything", true, true},
		{"duration quirk", "12", "120", false, true},
		{"miss", "Bob", "Jane", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.needle, tt.caseSensitive)(tt.value); got != tt.want {
				t.Errorf("Contains(%q)(%q) = %v, want %v", tt.needle, tt.value, got, tt.want)
			}
		})
	}
}

func TestEquals(t *testing.T) {
	if Equals("12", false)("120") {
		t.Error("Equals should not match a longer value")
	}
	if !Equals("12", false)("12") {
		t.Error("Equals should match an identical value")
	}
	if !Equals("jane", false)("Jane") {
		t.Error("case-insensitive Equals should fold case")
	}
	if Equals("jane", true)("Jane") {
		t.Error("case-sensitive Equals should not fold case")
	}
}

func TestNewFilter(t *testing.T) {
	f := NewFilter("bug", true)
	if f.Keyword != "bug" || !f.CaseSensitive {
		t.Errorf("unexpected filter %+v", f)
	}
	if len(f.Fields) != 3 {
		t.Errorf("expected 3 search fields, got %d", len(f.Fields))
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	if !NewFilter("", false).IsEmpty() {
		t.Error("empty keyword should be empty")
	}
	if NewFilter("x", false).IsEmpty() {
		t.Error("non-empty keyword should not be empty")
	}
}

func TestFilter_Matches(t *testing.T) {
	e := makeEntry("Jane", "Quarterly report", "sent to finance")

	tests := []struct {
		name    string
		keyword string
		want    bool
	}{
		{"employee", "jan", true},
		{"task", "quarterly", true},
		{"notes", "finance", true},
		{"duration is not searched", "30", false},
		{"timestamp is not searched", "2024", false},
		{"no match", "holiday", false},
		{"empty keyword", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewFilter(tt.keyword, false).Matches(e); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []entry.Entry{
		makeEntry("Jane", "Report", "ok"),
		makeEntry("John", "Review", "needs follow-up"),
		makeEntry("Jill", "Planning", "follow-up next week"),
	}

	got := FilterEntries(entries, NewFilter("follow-up", false))
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Employee != "John" || got[1].Employee != "Jill" {
		t.Errorf("expected original order [John Jill], got [%s %s]", got[0].Employee, got[1].Employee)
	}

	if all := FilterEntries(entries, NewFilter("", false)); len(all) != 3 {
		t.Errorf("empty filter should return all entries, got %d", len(all))
	}

	if none := FilterEntries(entries, NewFilter("zzz", false)); len(none) != 0 {
		t.Errorf("expected no entries, got %d", len(none))
	}
}

// Package filter provides the text predicates used to select entries.
package filter

import (
	"strings"

	"github.com/xolan/worklog/internal/entry"
)

// Predicate reports whether a field value matches.
type Predicate func(value string) bool

// SearchFields are the fields a free-text search looks at.
var SearchFields = []entry.Field{entry.FieldEmployee, entry.FieldTaskName, entry.FieldNotes}

// Contains returns a predicate matching values that contain needle.
// An empty needle matches everything.
func Contains(needle string, caseSensitive bool) Predicate {
	if caseSensitive {
		return func(value string) bool {
			return strings.Contains(value, needle)
		}
	}
	lower := strings.ToLower(needle)
	return func(value string) bool {
		return strings.Contains(strings.ToLower(value), lower)
	}
}

// Equals returns a predicate matching values equal to needle.
func Equals(needle string, caseSensitive bool) Predicate {
	if caseSensitive {
		return func(value string) bool {
			return value == needle
		}
	}
	return func(value string) bool {
		return strings.EqualFold(value, needle)
	}
}

// Filter represents a free-text search over several entry fields.
// An entry matches when any of the fields contains the keyword.
type Filter struct {
	Keyword       string
	CaseSensitive bool
	Fields        []entry.Field
}

// NewFilter creates a Filter over SearchFields.
func NewFilter(keyword string, caseSensitive bool) *Filter {
	return &Filter{
		Keyword:       keyword,
		CaseSensitive: caseSensitive,
		Fields:        SearchFields,
	}
}

// IsEmpty returns true if the filter matches all entries
func (f *Filter) IsEmpty() bool {
	return f.Keyword == ""
}

// Matches returns true if any filter field of e contains the keyword.
func (f *Filter) Matches(e entry.Entry) bool {
	if f.IsEmpty() {
		return true
	}

	contains := Contains(f.Keyword, f.CaseSensitive)
	for _, field := range f.Fields {
		if contains(e.Value(field)) {
			return true
		}
	}
	return false
}

// FilterEntries returns the entries matching f, in their original order.
func FilterEntries(entries []entry.Entry, f *Filter) []entry.Entry {
	if f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

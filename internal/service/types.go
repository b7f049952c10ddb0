// Package service provides the business logic layer for the worklog
// application. It wraps the record store with the query strategies and
// the entry lifecycle used by both the REPL and the browser.
package service

import (
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/storage"
)

// Store is the persistence the services need. *storage.Store implements it.
type Store interface {
	Insert(e entry.Entry) (entry.Entry, error)
	ScanOrderedBy(field entry.Field, dir storage.Direction) ([]entry.Entry, error)
	FilterWhere(order entry.Field, dir storage.Direction, field entry.Field, pred func(string) bool) ([]entry.Entry, error)
	DeleteByID(id string) error
	Count() (int, error)
	Backup() error
}

// Strategy identifies one way of retrieving entries
type Strategy int

const (
	ByEmployee Strategy = iota
	ByDate
	ByDuration
	BySearchTerm
)

// Strategies lists every strategy in menu order.
var Strategies = []Strategy{ByEmployee, ByDate, ByDuration, BySearchTerm}

// Label returns the menu text of the strategy.
func (s Strategy) Label() string {
	switch s {
	case ByEmployee:
		return "Find by employee"
	case ByDate:
		return "Find by date"
	case ByDuration:
		return "Find by time spent"
	case BySearchTerm:
		return "Find by search term"
	default:
		return "Unknown"
	}
}

// HasChoices reports whether the strategy picks its value from a menu of
// existing values rather than from free text.
func (s Strategy) HasChoices() bool {
	return s == ByEmployee || s == ByDate || s == ByDuration
}

// Choice is one numbered line of a selection menu. Value is what the
// strategy filters on; Label is what the user sees.
type Choice struct {
	Value string
	Label string
}

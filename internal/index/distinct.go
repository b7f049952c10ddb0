// Package index builds the numbered choice lists shown by the query menus.
package index

import "github.com/xolan/worklog/internal/entry"

// Distinct returns the values extracted from entries with duplicates
// removed, in order of first appearance. A value's position in the result
// is its menu number.
func Distinct[V comparable](entries []entry.Entry, extract func(entry.Entry) V) []V {
	seen := make(map[V]struct{}, len(entries))
	values := make([]V, 0, len(entries))
	for _, e := range entries {
		v := extract(e)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// Package search filters history views by query string.
package search

import (
	"strings"

	"github.com/sadopc/klip/internal/core/history"
)

// Filter returns the entries whose content contains query, matched
// case-insensitively. An empty query is the identity filter: the input
// slice is returned as-is. Match order preserves the input order, so
// recency stays the dominant sort signal.
func Filter(entries []history.Entry, query string) []history.Entry {
	if query == "" {
		return entries
	}

	q := strings.ToLower(query)
	var out []history.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Content), q) {
			out = append(out, e)
		}
	}
	return out
}

package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/macroedit/internal/catalog"
)

// Filter keeps the entries matching query, in catalog order. A word of the
// display string within one edit of the query also matches once the query is
// four characters long.
func Filter[D any](entries []catalog.Entry[D], query string) []catalog.Entry[D] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	out := make([]catalog.Entry[D], 0, len(entries))
	for _, e := range entries {
		if matches(e.DisplayString, e.Description, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(name, desc, q string) bool {
	name = strings.ToLower(name)
	if strings.Contains(name, q) || strings.Contains(strings.ToLower(desc), q) {
		return true
	}
	if len([]rune(q)) < 4 {
		return false
	}
	for _, word := range strings.Fields(name) {
		if levenshtein.ComputeDistance(word, q) <= 1 {
			return true
		}
	}
	return false
}

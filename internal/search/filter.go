// Package search implements the substring filter over a search index: query normalization,
// case-insensitive matching on title and content, and result snippets.
package search

import (
	"strings"

	"github.com/hyperjump/sitesearch/internal/models"
)

const (
	// MinQueryLength is the shortest normalized query, in characters, that is searched.
	MinQueryLength = 2
	// MaxResults is the number of matches rendered in the dropdown.
	MaxResults = 8
	// SnippetLength is the number of content characters shown per result.
	SnippetLength = 90
)

// Normalize trims whitespace and lowercases raw.
func Normalize(raw string) string {
	return models.NewQuery(raw).Normalized
}

// Matches reports whether the lowercased title or content of e contains the normalized query.
func Matches(e models.IndexEntry, normalized string) bool {
	return strings.Contains(strings.ToLower(e.Title), normalized) ||
		strings.Contains(strings.ToLower(e.Content), normalized)
}

// Filter returns every entry matching the normalized query, in index order.
func Filter(index models.SearchIndex, normalized string) []models.IndexEntry {
	var matches []models.IndexEntry
	for _, e := range index {
		if Matches(e, normalized) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Limit returns at most the first n entries.
func Limit(entries []models.IndexEntry, n int) []models.IndexEntry {
	if n < 0 {
		n = 0
	}
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}

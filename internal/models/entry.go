// Package models defines the search index entries, the index lifecycle and the query and result types
// shared by the widget, the server and the CLI.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// IndexEntry is one searchable page or post of the site.
type IndexEntry struct {
	Title      string     `json:"title"`
	URL        string     `json:"url"`
	Date       string     `json:"date"`
	Categories Categories `json:"categories"`
	Content    string     `json:"content"`
}

// Categories is the display label of an entry's categories.
// It decodes from either a JSON string or an array of strings (joined with ", ").
type Categories string

// UnmarshalJSON accepts a string, an array of strings or null.
func (c *Categories) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = ""
		return nil
	}
	if trimmed[0] == '[' {
		var parts []string
		if err := json.Unmarshal(trimmed, &parts); err != nil {
			return fmt.Errorf("invalid categories: %w", err)
		}
		*c = Categories(strings.Join(parts, ", "))
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return fmt.Errorf("invalid categories: %w", err)
	}
	*c = Categories(s)
	return nil
}

// SearchIndex is the ordered list of entries loaded from search.json.
// It is never mutated after it has been parsed.
type SearchIndex []IndexEntry

// ErrNotAnArray is returned by ParseIndex when the document is not a JSON array.
var ErrNotAnArray = errors.New("search index is not a JSON array")

// ParseIndex decodes a search.json document.
func ParseIndex(data []byte) (SearchIndex, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotAnArray
	}
	var index SearchIndex
	if err := json.Unmarshal(trimmed, &index); err != nil {
		return nil, fmt.Errorf("failed to parse search index: %w", err)
	}
	if index == nil {
		index = SearchIndex{}
	}
	return index, nil
}

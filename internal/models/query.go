package models

import (
	"strings"
	"unicode/utf8"
)

// Query is a raw input value together with its normalized form.
type Query struct {
	Raw        string
	Normalized string
}

// NewQuery trims and lowercases raw.
func NewQuery(raw string) Query {
	return Query{
		Raw:        raw,
		Normalized: strings.ToLower(strings.TrimSpace(raw)),
	}
}

// Len returns the length of the normalized query in characters.
func (q Query) Len() int {
	return utf8.RuneCountInString(q.Normalized)
}

package search

import "github.com/hyperjump/sitesearch/pkg/utils"

// Snippet returns the first n characters of content followed by "...".
// The ellipsis is always appended, even when content is shorter than n.
func Snippet(content string, n int) string {
	return utils.Prefix(content, n) + "..."
}

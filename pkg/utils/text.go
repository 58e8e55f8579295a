// Package utils provides shared utilities for text and logging.
package utils

import "unicode/utf8"

// Prefix returns the first n characters (runes) of s. If n is 0 or negative, returns "".
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Truncate returns s truncated to maxLen characters, with "..." appended if truncated.
// If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return Prefix(s, maxLen) + "..."
}

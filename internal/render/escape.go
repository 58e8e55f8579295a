package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces the five HTML-reserved characters of s with entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

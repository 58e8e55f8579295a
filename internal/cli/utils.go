// Package cli provides output helpers for the sitesearch commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/sitesearch/internal/models"
	"github.com/hyperjump/sitesearch/internal/render"
	"github.com/hyperjump/sitesearch/pkg/utils"
)

// OutputFormat is the format for query output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
	// OutputHTML is the exact markup the results container would hold.
	OutputHTML OutputFormat = "html"
)

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", OutputText:
		return OutputText, nil
	case OutputJSON, OutputHTML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or html)", s)
	}
}

// WriteResults writes the container content for query to w in the given format.
func WriteResults(w io.Writer, query string, f render.Fragment, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f.Response(query))
	case OutputHTML:
		_, err := fmt.Fprintln(w, f.HTML)
		return err
	default:
		writeResultsText(w, f)
		return nil
	}
}

func writeResultsText(w io.Writer, f render.Fragment) {
	switch f.State {
	case render.StateHidden:
		fmt.Fprintln(w, "(hidden)")
	case render.StateMessage:
		fmt.Fprintln(w, f.Message)
	default:
		fmt.Fprintf(w, "\nShowing %d of %d results\n\n", len(f.Items), f.Total)
		for i, item := range f.Items {
			writeOneResult(w, i+1, item)
		}
	}
}

func writeOneResult(w io.Writer, rank int, item *models.SearchResult) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "%d. %s\n", rank, item.Title)
	fmt.Fprintf(w, "   %s\n", item.URL)
	fmt.Fprintf(w, "   %s · %s\n", item.Date, item.Categories)
	fmt.Fprintf(w, "\n%s\n", TruncateWords(item.Snippet, 20))
	fmt.Fprintln(w)
}

// Truncate truncates s to maxLen characters and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	return utils.Truncate(s, maxLen)
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}

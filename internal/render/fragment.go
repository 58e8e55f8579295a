// Package render builds the markup of the search results container.
package render

import (
	"strings"

	"github.com/hyperjump/sitesearch/internal/models"
	"github.com/hyperjump/sitesearch/internal/search"
)

// Fixed user-facing messages.
const (
	MessageNoResults   = "검색 결과가 없습니다."
	MessageIndexFailed = "검색 인덱스를 불러오지 못했습니다."
)

// State is the rendering state of the results container.
type State int

const (
	StateHidden State = iota
	StateMessage
	StateResults
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateMessage:
		return "message"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// Fragment is the content of the results container: its state, the structured
// items it shows and the equivalent HTML.
type Fragment struct {
	State   State
	Message string
	Items   []*models.SearchResult
	// Total counts every match, including those beyond the rendered items.
	Total int
	HTML  string
}

// Visible reports whether the container should be shown.
func (f Fragment) Visible() bool {
	return f.State != StateHidden
}

// Hidden is the empty, hidden container.
func Hidden() Fragment {
	return Fragment{State: StateHidden}
}

// Message renders a single fixed message.
func Message(text string) Fragment {
	return Fragment{
		State:   StateMessage,
		Message: text,
		HTML:    `<p class="search-empty">` + Escape(text) + `</p>`,
	}
}

// Results renders entries as result links. total is the match count before the
// entries were capped.
func Results(entries []models.IndexEntry, total int) Fragment {
	items := make([]*models.SearchResult, 0, len(entries))
	var b strings.Builder
	for _, e := range entries {
		item := NewItem(e)
		items = append(items, item)
		writeItem(&b, item)
	}
	return Fragment{
		State: StateResults,
		Items: items,
		Total: total,
		HTML:  b.String(),
	}
}

// NewItem converts an entry to its displayed form.
func NewItem(e models.IndexEntry) *models.SearchResult {
	return &models.SearchResult{
		Title:      e.Title,
		URL:        e.URL,
		Date:       e.Date,
		Categories: string(e.Categories),
		Snippet:    search.Snippet(e.Content, search.SnippetLength),
	}
}

func writeItem(b *strings.Builder, item *models.SearchResult) {
	b.WriteString(`<a class="search-item" href="`)
	b.WriteString(Escape(item.URL))
	b.WriteString(`"><strong>`)
	b.WriteString(Escape(item.Title))
	b.WriteString(`</strong><small>`)
	b.WriteString(Escape(item.Date))
	b.WriteString(` · `)
	b.WriteString(Escape(item.Categories))
	b.WriteString(`</small><span>`)
	b.WriteString(Escape(item.Snippet))
	b.WriteString(`</span></a>`)
}

// Response converts f to the JSON response shape for query.
func (f Fragment) Response(query string) *models.SearchResponse {
	results := f.Items
	if results == nil {
		results = []*models.SearchResult{}
	}
	return &models.SearchResponse{
		Query:   query,
		State:   f.State.String(),
		Message: f.Message,
		Total:   f.Total,
		Results: results,
	}
}

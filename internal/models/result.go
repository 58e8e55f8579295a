package models

// SearchResult is one rendered match.
type SearchResult struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Date       string `json:"date"`
	Categories string `json:"categories"`
	Snippet    string `json:"snippet"`
}

// SearchResponse is the JSON shape returned by the search API and `sitesearch query --output json`.
type SearchResponse struct {
	Query   string          `json:"query"`
	State   string          `json:"state"`
	Message string          `json:"message,omitempty"`
	Total   int             `json:"total"`
	Results []*SearchResult `json:"results"`
	// QueryTime is only set by the server.
	QueryTime int64 `json:"query_time_ms,omitempty"`
}

package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hyperjump/sitesearch/internal/models"
)

// HTTPFetcher GETs the index. Relative locations are resolved against Origin,
// the way a browser resolves them against the page.
type HTTPFetcher struct {
	Origin string
	client *http.Client
}

// NewHTTPFetcher returns a fetcher for origin. A nil client means http.DefaultClient.
func NewHTTPFetcher(origin string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{Origin: strings.TrimRight(origin, "/"), client: client}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, location string) (models.SearchIndex, error) {
	target, err := f.resolve(location)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return models.ParseIndex(body)
}

func (f *HTTPFetcher) resolve(location string) (string, error) {
	loc, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("invalid location %q: %w", location, err)
	}
	if loc.IsAbs() {
		return loc.String(), nil
	}
	if f.Origin == "" {
		return "", fmt.Errorf("relative location %q needs an origin", location)
	}
	base, err := url.Parse(f.Origin + "/")
	if err != nil {
		return "", fmt.Errorf("invalid origin %q: %w", f.Origin, err)
	}
	return base.ResolveReference(loc).String(), nil
}

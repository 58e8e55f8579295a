// Package loader fetches a site's search.json once, asynchronously, over HTTP or from disk.
package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyperjump/sitesearch/internal/models"
)

// IndexFile is the name of the index resource under the site's base URL.
const IndexFile = "search.json"

// ErrIndexLoad is wrapped by every error returned from a failed load.
var ErrIndexLoad = errors.New("search index failed to load")

// LoadError describes a failed load of the index at Location.
type LoadError struct {
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIndexLoad, e.Location, e.Err)
}

// Unwrap lets errors.Is match both ErrIndexLoad and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrIndexLoad, e.Err}
}

// Fetcher retrieves and parses the index at location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (models.SearchIndex, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, location string) (models.SearchIndex, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, location string) (models.SearchIndex, error) {
	return f(ctx, location)
}

// Result is the outcome of a single load: either Index or Err is set.
type Result struct {
	Location string
	Index    models.SearchIndex
	Err      error
}

// IndexLocation derives the index location from a base URL by concatenation.
func IndexLocation(baseURL string) string {
	return baseURL + "/" + IndexFile
}

// Load fetches location in a new goroutine. The returned channel yields exactly one Result
// and is then closed. There is no retry.
func Load(ctx context.Context, f Fetcher, location string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- fetch(ctx, f, location)
	}()
	return out
}

// LoadSync is the blocking form of Load.
func LoadSync(ctx context.Context, f Fetcher, location string) Result {
	return fetch(ctx, f, location)
}

func fetch(ctx context.Context, f Fetcher, location string) Result {
	index, err := f.Fetch(ctx, location)
	if err != nil {
		return Result{Location: location, Err: &LoadError{Location: location, Err: err}}
	}
	return Result{Location: location, Index: index}
}

package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/hyperjump/sitesearch/internal/models"
)

// FileFetcher reads the index from a file on disk. When Path is set it is read regardless
// of the requested location; otherwise the location itself is used as the path.
type FileFetcher struct {
	Path string
}

// Fetch implements Fetcher.
func (f FileFetcher) Fetch(ctx context.Context, location string) (models.SearchIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := f.Path
	if path == "" {
		path = location
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	return models.ParseIndex(data)
}

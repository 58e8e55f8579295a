// Package catalog keeps the server's current snapshot of a site's search index.
package catalog

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hyperjump/sitesearch/internal/models"
)

// Catalog holds the raw search.json payload and its parsed index. A snapshot is only ever
// replaced as a whole.
type Catalog struct {
	mu       sync.RWMutex
	raw      []byte
	index    models.SearchIndex
	source   string
	loadedAt time.Time
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Replace parses payload and swaps it in. On a parse error the previous snapshot is kept.
func (c *Catalog) Replace(source string, payload []byte) error {
	index, err := models.ParseIndex(payload)
	if err != nil {
		return err
	}
	raw := append([]byte(nil), payload...)
	c.mu.Lock()
	c.raw = raw
	c.index = index
	c.source = source
	c.loadedAt = time.Now()
	c.mu.Unlock()
	return nil
}

// LoadFile reads path and replaces the snapshot with its content.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read index file: %w", err)
	}
	return c.Replace(path, data)
}

// Snapshot returns the current index. Callers must not modify it.
func (c *Catalog) Snapshot() models.SearchIndex {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

// Raw returns a copy of the current payload, or nil before the first load.
func (c *Catalog) Raw() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.raw) == 0 {
		return nil
	}
	clone := make([]byte, len(c.raw))
	copy(clone, c.raw)
	return clone
}

// Info describes the current snapshot.
type Info struct {
	Source   string    `json:"source"`
	Entries  int       `json:"entries"`
	Bytes    int       `json:"bytes"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Info returns metadata about the current snapshot.
func (c *Catalog) Info() Info {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Info{
		Source:   c.source,
		Entries:  len(c.index),
		Bytes:    len(c.raw),
		LoadedAt: c.loadedAt,
	}
}

// Loaded reports whether a snapshot is present.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index != nil
}

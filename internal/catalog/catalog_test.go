package catalog

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ReplaceAndSnapshot(t *testing.T) {
	c := New()
	assert.False(t, c.Loaded())
	assert.Nil(t, c.Raw())
	assert.Empty(t, c.Snapshot())

	require.NoError(t, c.Replace("mem", []byte(`[{"title":"a"},{"title":"b"}]`)))
	assert.True(t, c.Loaded())
	assert.Len(t, c.Snapshot(), 2)
	info := c.Info()
	assert.Equal(t, "mem", info.Source)
	assert.Equal(t, 2, info.Entries)
	assert.False(t, info.LoadedAt.IsZero())
}

func TestCatalog_InvalidPayloadKeepsPrevious(t *testing.T) {
	c := New()
	require.NoError(t, c.Replace("v1", []byte(`[{"title":"a"}]`)))
	assert.Error(t, c.Replace("v2", []byte(`[{"title":`)))
	assert.Len(t, c.Snapshot(), 1)
	assert.Equal(t, "v1", c.Info().Source)
}

func TestCatalog_RawIsCopied(t *testing.T) {
	c := New()
	payload := []byte(`[]`)
	require.NoError(t, c.Replace("mem", payload))
	payload[0] = '{'
	raw := c.Raw()
	assert.Equal(t, "[]", string(raw))
	raw[0] = 'x'
	assert.Equal(t, "[]", string(c.Raw()))
}

func TestCatalog_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"a"}]`), 0o644))
	c := New()
	require.NoError(t, c.LoadFile(path))
	assert.Equal(t, path, c.Info().Source)

	assert.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "missing.json")))
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Replace("w", []byte(`[{"title":"a"}]`))
		}()
		go func() {
			defer wg.Done()
			_ = c.Snapshot()
			_ = c.Raw()
		}()
	}
	wg.Wait()
	assert.True(t, c.Loaded())
}

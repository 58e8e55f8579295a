package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	index := filepath.Join(dir, "search.json")
	if err := os.WriteFile(index, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	var changed []string
	var mu sync.Mutex
	w := NewWatcher([]string{index}, func(path string) {
		mu.Lock()
		changed = append(changed, path)
		mu.Unlock()
	}, WithDebounce(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(index, []byte(`[{"title":"x"}]`), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	// An unrelated file in the same directory is ignored.
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(500 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(changed) != 1 {
		t.Fatalf("expected one settled change, got %v", changed)
	}
	want, _ := filepath.Abs(index)
	if changed[0] != filepath.Clean(want) {
		t.Errorf("changed path = %q, want %q", changed[0], want)
	}
}

func TestWatcher_Start_createsMissingDirectory(t *testing.T) {
	base := t.TempDir()
	index := filepath.Join(base, "_site", "search.json")

	w := NewWatcher([]string{index}, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if _, err := os.Stat(filepath.Dir(index)); err != nil {
		t.Errorf("directory should exist after Start: %v", err)
	}
}

func TestWatcher_Files(t *testing.T) {
	w := NewWatcher([]string{"a/search.json", "a/search.json", "b/search.json"}, nil)
	if got := len(w.Files()); got != 2 {
		t.Errorf("Files() = %d entries, want 2", got)
	}
	if got := len(w.dirs); got != 2 {
		t.Errorf("dirs = %d, want 2", got)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := NewWatcher([]string{filepath.Join(t.TempDir(), "search.json")}, nil)
	w.Stop()
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}

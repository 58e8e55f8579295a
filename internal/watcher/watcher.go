// Package watcher watches index files with fsnotify and reports debounced changes.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 400 * time.Millisecond

// Watcher watches a set of files and invokes onChange once a burst of writes has settled.
// It watches the parent directory of every file so that files replaced by rename or
// recreated by a site rebuild are still seen.
type Watcher struct {
	files       map[string]struct{}
	dirs        []string
	onChange    func(path string)
	debounce    time.Duration
	watcher     *fsnotify.Watcher
	mu          sync.Mutex
	debounceMap map[string]*time.Timer
	done        chan struct{}
	started     bool
	stopOnce    sync.Once
	logger      *zap.Logger // optional; when set, logs debug events
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) WatcherOption {
	return func(w *Watcher) { w.logger = l }
}

// WithDebounce overrides the quiet period before onChange fires.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// NewWatcher creates a watcher for files. onChange receives the cleaned absolute path.
func NewWatcher(files []string, onChange func(path string), opts ...WatcherOption) *Watcher {
	w := &Watcher{
		files:       make(map[string]struct{}),
		onChange:    onChange,
		debounce:    defaultDebounce,
		debounceMap: make(map[string]*time.Timer),
		done:        make(chan struct{}),
	}
	seen := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			abs = f
		}
		abs = filepath.Clean(abs)
		w.files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start starts the watcher. It runs until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	for _, dir := range w.dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			_ = watcher.Close()
			w.mu.Unlock()
			return err
		}
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			w.mu.Unlock()
			return err
		}
	}
	w.watcher = watcher
	w.started = true
	if w.logger != nil {
		w.logger.Debug("watcher starting", zap.Strings("dirs", w.dirs), zap.Strings("files", w.Files()))
	}
	w.mu.Unlock()
	go w.run(ctx, watcher)
	return nil
}

func (w *Watcher) run(ctx context.Context, watcher *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if err != nil && w.logger != nil {
				w.logger.Debug("watcher error", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	path := filepath.Clean(ev.Name)
	if _, ok := w.files[path]; !ok {
		return
	}
	if w.logger != nil {
		w.logger.Debug("watcher event", zap.String("op", ev.Op.String()), zap.String("path", path))
	}
	switch {
	case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
		w.debounceChange(path)
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		// The file is gone until the next build writes it again; keep the last snapshot.
		w.cancelDebounce(path)
	}
}

func (w *Watcher) debounceChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.debounceMap[path]; ok {
		t.Stop()
	}
	t := time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.debounceMap, path)
		logger := w.logger
		w.mu.Unlock()
		if logger != nil {
			logger.Debug("watcher change settled", zap.String("path", path))
		}
		if w.onChange != nil {
			w.onChange(path)
		}
	})
	w.debounceMap[path] = t
}

func (w *Watcher) cancelDebounce(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.debounceMap[path]; ok {
		t.Stop()
		delete(w.debounceMap, path)
	}
}

// Files returns the watched file paths.
func (w *Watcher) Files() []string {
	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	return files
}

// Stop stops the watcher and releases resources.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.started || w.watcher == nil {
		w.mu.Unlock()
		return
	}
	for path, t := range w.debounceMap {
		t.Stop()
		delete(w.debounceMap, path)
	}
	_ = w.watcher.Close()
	w.watcher = nil
	w.started = false
	w.mu.Unlock()
	w.stopOnce.Do(func() { close(w.done) })
}

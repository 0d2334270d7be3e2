package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"laydeck/internal/digest"
	"laydeck/internal/domain"
	"laydeck/internal/paths"
)

// LayoutExt is the extension of deck layout files.
const LayoutExt = ".lay"

// Handler processes one settled layout file.
type Handler func(ctx context.Context, path string)

// Watcher watches one directory for layout files.
type Watcher struct {
	dir      string
	debounce time.Duration
	tick     time.Duration
	handle   Handler
	log      *zap.Logger

	mu      sync.Mutex
	pending map[string]time.Time
	seen    map[string]domain.Fingerprint
}

// New returns a Watcher for dir. A nil log discards log output.
func New(dir string, debounce time.Duration, handle Handler, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	tick := 100 * time.Millisecond
	if debounce > 0 && debounce < tick {
		tick = debounce
	}
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		tick:     tick,
		handle:   handle,
		log:      log.With(zap.String("dir", dir)),
		pending:  make(map[string]time.Time),
		seen:     make(map[string]domain.Fingerprint),
	}
}

// IsLayout reports whether path names a deck layout file.
func IsLayout(path string) bool {
	return strings.EqualFold(paths.Ext(path), LayoutExt)
}

// Existing lists the layout files already present in dir, sorted by name.
func Existing(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.Type().IsRegular() && IsLayout(e.Name()) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}

// Run blocks until ctx is cancelled, handing settled layout files to the
// handler one at a time.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.log.Info("watching for layout files", zap.Duration("debounce", w.debounce))

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watch stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return errors.New("watcher event channel closed")
			}
			w.handleEvent(event, time.Now())

		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("watcher error channel closed")
			}
			w.log.Warn("watcher error", zap.Error(err))

		case now := <-ticker.C:
			for _, path := range w.settled(now) {
				w.process(ctx, path)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, at time.Time) {
	if !IsLayout(event.Name) {
		return
	}
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		w.log.Debug("layout event", zap.String("path", event.Name), zap.String("op", event.Op.String()))
		w.note(event.Name, at)
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.forget(event.Name)
	}
}

// note records an event for path at time at.
func (w *Watcher) note(path string, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[path] = at
}

func (w *Watcher) forget(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.pending, path)
	delete(w.seen, path)
}

// settled removes and returns, sorted, the paths with no event inside the
// debounce window ending at now.
func (w *Watcher) settled(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			out = append(out, path)
			delete(w.pending, path)
		}
	}
	slices.Sort(out)
	return out
}

// changed records the fingerprint of content for path and reports whether
// it differs from the previous one.
func (w *Watcher) changed(path string, content []byte) bool {
	fp := digest.Fingerprint(content)

	w.mu.Lock()
	defer w.mu.Unlock()
	if prev, ok := w.seen[path]; ok && prev == fp {
		return false
	}
	w.seen[path] = fp
	return true
}

func (w *Watcher) process(ctx context.Context, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			w.log.Warn("read layout", zap.String("path", path), zap.Error(err))
		}
		return
	}
	if !w.changed(path, content) {
		w.log.Debug("layout unchanged", zap.String("path", path))
		return
	}
	w.handle(ctx, path)
}

// Package watch triggers regeneration when rule sources change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 200 * time.Millisecond

// Handler is called with the changed paths after each settled burst of events.
type Handler func(ctx context.Context, changed []string) error

// Target selects which paths inside the watched directories are relevant.
type Target struct {
	// Dir is watched non-recursively.
	Dir string

	// Extensions limits matches to these file extensions. Empty matches any file.
	Extensions []string

	// Files limits matches to these base names. Empty matches any file.
	Files []string
}

func (t Target) matches(path string) bool {
	if filepath.Clean(filepath.Dir(path)) != filepath.Clean(t.Dir) {
		return false
	}
	if len(t.Files) > 0 && !slices.Contains(t.Files, filepath.Base(path)) {
		return false
	}
	if len(t.Extensions) > 0 && !slices.Contains(t.Extensions, filepath.Ext(path)) {
		return false
	}
	return true
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher observes a set of targets.
type Watcher struct {
	watcher  *fsnotify.Watcher
	targets  []Target
	debounce time.Duration
}

// New creates a Watcher and registers every target directory.
// Directories that do not exist yet are an error.
func New(targets []Target, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsw,
		targets:  targets,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	added := make(map[string]struct{})
	for _, target := range targets {
		dir, err := filepath.Abs(target.Dir)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("resolve %s: %w", target.Dir, err)
		}
		if _, ok := added[dir]; ok {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("add path to watcher: %w", err)
		}
		added[dir] = struct{}{}
	}

	for i := range w.targets {
		abs, err := filepath.Abs(w.targets[i].Dir)
		if err == nil {
			w.targets[i].Dir = abs
		}
	}

	return w, nil
}

// Run delivers settled change sets to handle until ctx is cancelled.
// A handler error stops the loop and is returned.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var pending []string

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			// Ignore events that are not related to file content changes.
			if evt.Has(fsnotify.Chmod) && !evt.Has(fsnotify.Write) {
				continue
			}
			if !w.isWatched(evt.Name) {
				continue
			}
			if !slices.Contains(pending, evt.Name) {
				pending = append(pending, evt.Name)
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := pending
			pending = nil
			if err := handle(ctx, changed); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				continue
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	return nil
}

func (w *Watcher) isWatched(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, target := range w.targets {
		if target.matches(abs) {
			return true
		}
	}
	return false
}

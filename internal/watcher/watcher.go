// Package watcher provides a debounced single-file watcher used by the
// watch command to re-run a search whenever the blocked-cells file
// changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/slepotek/gridpath/internal/logging"
)

// DefaultDebounce groups bursts of write events from editors that save
// in several steps.
const DefaultDebounce = 300 * time.Millisecond

// FileWatcher watches one file and invokes a handler after changes have
// settled for the debounce interval.
type FileWatcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	log      logging.Logger
}

// New creates a watcher for path. A non-positive debounce falls back to
// DefaultDebounce.
func New(path string, debounce time.Duration) (*FileWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	// Watch the parent directory: editors commonly replace a file by
	// rename, which drops a watch registered on the file itself.
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &FileWatcher{
		path:     abs,
		debounce: debounce,
		watcher:  fsWatcher,
		log:      logging.Default().WithComponent("watcher"),
	}, nil
}

// Watch blocks, invoking onChange after each debounced change to the
// watched file, until ctx is canceled or the event stream closes.
func (w *FileWatcher) Watch(ctx context.Context, onChange func()) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug(ctx, "change detected", "file", w.path, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn(ctx, err, "watch error")
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *FileWatcher) Close() error {
	return w.watcher.Close()
}

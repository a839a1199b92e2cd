package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk. Editors tend to
// emit bursts of write/rename events, so reloads are debounced.
type Watcher struct {
	path    string
	reloads chan Config
}

// NewWatcher watches the given config file path.
func NewWatcher(path string) *Watcher {
	return &Watcher{
		path:    path,
		reloads: make(chan Config, 1),
	}
}

// Reloads delivers the freshly loaded config after each change. Sends are
// non-blocking; a pending reload is superseded by a newer one.
func (w *Watcher) Reloads() <-chan Config {
	return w.reloads
}

// Run watches until ctx is cancelled. Watch setup failure is logged and
// disables live reload; it never takes the app down.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.reloads)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("config watch unavailable", "err", err)
		<-ctx.Done()
		return
	}
	defer fw.Close()

	// Watch the directory: editors replace the file by rename, which
	// drops a watch on the file itself.
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		slog.Warn("config watch unavailable", "path", w.path, "err", err)
		<-ctx.Done()
		return
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(100 * time.Millisecond)
				timerC = timer.C
			} else {
				timer.Reset(100 * time.Millisecond)
			}
		case <-timerC:
			cfg := LoadFrom(w.path)
			select {
			case w.reloads <- cfg:
			default:
				// Drop the stale pending reload and queue the new one.
				select {
				case <-w.reloads:
				default:
				}
				w.reloads <- cfg
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Debug("config watch error", "err", err)
		}
	}
}

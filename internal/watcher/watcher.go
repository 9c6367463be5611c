// Package watcher provides config file watching with debouncing using
// fsnotify.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval collapses editor write bursts (truncate+write, or
// write-to-temp-then-rename) into a single change notification.
const debounceInterval = 200 * time.Millisecond

// ConfigWatcher watches one file and invokes a callback after changes
// settle. The parent directory is watched rather than the file itself so
// that atomic-rename saves keep working.
type ConfigWatcher struct {
	path     string
	onChange func()
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// New starts watching path. onChange runs on the watcher goroutine; keep
// it short or hand off to a channel.
func New(path string, onChange func()) (*ConfigWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &ConfigWatcher{
		path:     path,
		onChange: onChange,
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *ConfigWatcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	base := filepath.Base(w.path)
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceInterval)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceInterval)
			}
		case <-fire:
			timer = nil
			fire = nil
			w.onChange()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next poll of the file by
			// the caller will surface real problems.
		}
	}
}

// Close stops the watcher.
func (w *ConfigWatcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

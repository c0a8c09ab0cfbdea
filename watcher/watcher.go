package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"wxdeck/log"
)

// FileWatcher invokes a callback when a single file changes, debounced so
// editors that write in several steps produce one reload.
type FileWatcher struct {
	fw       *fsnotify.Watcher
	target   string
	debounce *Debouncer
	done     chan struct{}
}

// WatchFile watches path and calls onChange (debounced) whenever it is
// written, created, or renamed. Watching the parent directory instead of the
// file itself survives the replace-on-save pattern.
func WatchFile(path string, window time.Duration, onChange func()) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &FileWatcher{
		fw:       fw,
		target:   abs,
		debounce: NewDebouncer(window),
		done:     make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

func (w *FileWatcher) loop(onChange func()) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debounce.Trigger(onChange)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.WarningLog.Printf("file watcher error: %v", err)
		}
	}
}

// Close stops the watcher and drops any pending callback.
func (w *FileWatcher) Close() error {
	close(w.done)
	w.debounce.Cancel()
	return w.fw.Close()
}

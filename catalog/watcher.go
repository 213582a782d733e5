package catalog

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"melodex/logger"
)

// reloadDelay coalesces the burst of events a file rewrite produces.
const reloadDelay = 500 * time.Millisecond

// Watcher reloads the catalog CSV when it changes on disk and hands the new
// catalog to onReload. Reload failures keep the previous catalog in service.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
	done chan struct{}
}

// Watch starts watching the catalog file. The containing directory is
// watched rather than the file itself so editors that replace the file via
// rename are still observed.
func Watch(path string, onReload func(*Catalog)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fsw:  fsw,
		path: filepath.Clean(path),
		done: make(chan struct{}),
	}
	go w.loop(onReload)
	logger.Info("Watching catalog file for changes", logger.String("path", w.path))
	return w, nil
}

func (w *Watcher) loop(onReload func(*Catalog)) {
	var pending *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending == nil {
				pending = time.AfterFunc(reloadDelay, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})
			} else {
				pending.Reset(reloadDelay)
			}
		case <-reload:
			pending = nil
			cat, err := LoadCSV(w.path)
			if err != nil {
				logger.Error("Catalog reload failed, keeping previous catalog",
					logger.String("path", w.path),
					logger.ErrorField(err))
				continue
			}
			logger.Info("Catalog reloaded", logger.Int("songs", cat.Len()))
			onReload(cat)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Error("Catalog watcher error", logger.ErrorField(err))
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

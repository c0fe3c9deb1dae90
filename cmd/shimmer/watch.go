// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// styleWatcher watches a style file and signals on Changed after it has
// been written, once per burst of writes.
type styleWatcher struct {

	// Changed receives a value after the file has changed.
	Changed chan struct{}

	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	stop     chan struct{}
	wg       sync.WaitGroup

	mu    sync.Mutex
	timer *time.Timer
}

// newStyleWatcher starts watching the file with the given name. Its
// directory is watched, so that editors replacing the file are seen.
func newStyleWatcher(path string, debounce time.Duration) (*styleWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &styleWatcher{
		Changed:  make(chan struct{}, 1),
		path:     abs,
		watcher:  fw,
		debounce: debounce,
		stop:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	slog.Info("watching style file", "path", abs)
	return w, nil
}

// Close stops watching.
func (w *styleWatcher) Close() error {
	close(w.stop)
	w.wg.Wait()
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *styleWatcher) run() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("style watcher error", "err", err)
		case <-w.stop:
			return
		}
	}
}

func (w *styleWatcher) handleEvent(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.path {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}
	slog.Debug("style file changed", "op", ev.Op)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.signal)
}

func (w *styleWatcher) signal() {
	select {
	case w.Changed <- struct{}{}:
	default: // already pending
	}
}

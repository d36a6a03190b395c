// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/viscera/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan bool
}

// Watch starts watching the given config file. Each time the file is
// written or created, it is read on top of a fresh default config, and
// the result is passed to the given function, from the goroutine of the
// watcher. Files that fail to load are logged and skipped.
func Watch(file string, fun func(cfg *Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors often replace the file, so the directory is watched
	if err := fw.Add(filepath.Dir(file)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{watcher: fw, done: make(chan bool)}
	abs := errors.Log1(filepath.Abs(file))
	go func() {
		for {
			select {
			case <-w.done:
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if errors.Log1(filepath.Abs(event.Name)) != abs {
					continue
				}
				if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				cfg := New()
				if errors.Log(Open(cfg, file)) != nil {
					continue
				}
				slog.Info("config: reloaded", "file", file)
				fun(cfg)
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

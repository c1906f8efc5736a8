// Copyright (c) 2025, The Schafer Family Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/serializer"
)

// Watcher reloads the catalog when a local input file changes. Directories
// are watched rather than files so replacements by rename are seen.
type Watcher struct {
	files    map[string]struct{}
	dirs     []string
	debounce time.Duration
	reload   func(context.Context) error
}

// NewWatcher watches the local file inputs among inputs. Stdin, URLs and
// ConfigMap URIs are ignored.
func NewWatcher(inputs []string, debounce time.Duration, reload func(context.Context) error) *Watcher {
	w := &Watcher{
		files:    make(map[string]struct{}),
		debounce: debounce,
		reload:   reload,
	}
	seen := make(map[string]struct{})
	for _, input := range inputs {
		if !isLocalFile(input) {
			continue
		}
		path, err := filepath.Abs(input)
		if err != nil {
			slog.Warn("cannot watch input", "input", input, "error", err)
			continue
		}
		w.files[path] = struct{}{}
		dir := filepath.Dir(path)
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			w.dirs = append(w.dirs, dir)
		}
	}
	return w
}

func isLocalFile(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" || input == serializer.StdoutURI || strings.HasPrefix(input, serializer.ConfigMapURIScheme) {
		return false
	}
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return false
	}
	return true
}

// Files returns the number of watched input files.
func (w *Watcher) Files() int {
	return len(w.files)
}

// relevant reports whether the event changes a watched input.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	path, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[path]
	return ok
}

// Run watches until ctx is done. A failed reload is logged and the previous
// catalog stays in place.
func (w *Watcher) Run(ctx context.Context) error {
	if len(w.files) == 0 {
		slog.Info("no local inputs to watch")
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to create file watcher", err)
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return errors.WrapWithContext(errors.ErrCodeInternal, "failed to watch directory", err,
				map[string]any{"dir": dir})
		}
	}
	slog.Info("watching inputs", "files", len(w.files), "dirs", len(w.dirs))

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				slog.Debug("input changed", "file", event.Name, "op", event.Op.String())
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "error", err)

		case <-timer.C:
			if err := w.reload(ctx); err != nil {
				slog.Warn("catalog reload failed, keeping previous catalog", "error", err)
				continue
			}
			slog.Info("catalog reloaded")
		}
	}
}

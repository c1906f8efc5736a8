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

	"golang.org/x/time/rate"

	"github.com/schafer-family/cookbook/pkg/convert"
	"github.com/schafer-family/cookbook/pkg/defaults"
	"github.com/schafer-family/cookbook/pkg/recipe"
	"github.com/schafer-family/cookbook/pkg/serializer"
	"github.com/schafer-family/cookbook/pkg/server"
)

const (
	name           = "cookbookd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/schafer-family/cookbook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the build version of the catalog API.
func Version() string {
	return version
}

// Options configures the catalog API.
type Options struct {
	// Inputs are the cookbook documents served as one catalog.
	Inputs []string
	// Port overrides the server default when positive.
	Port int
	// RateLimit and RateLimitBurst override the server defaults when positive.
	RateLimit      float64
	RateLimitBurst int
	// Watch reloads the catalog when a local input file changes.
	Watch bool
	// ParserOptions apply to every load.
	ParserOptions []recipe.Option
	// Source reads inputs; nil uses the default SourceReader.
	Source *serializer.SourceReader
}

// Serve loads the catalog and serves it until ctx is canceled or the process
// is signaled. Readiness stays false until the first load succeeds. Without
// Watch an initial load failure stops the server; with Watch the server
// keeps waiting for a usable input.
func Serve(ctx context.Context, opts Options) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"inputs", opts.Inputs,
		"watch", opts.Watch,
	)

	store := NewStore()
	reload := func(ctx context.Context) error {
		gen := store.Begin()
		catalog, err := convert.Load(ctx, opts.Inputs, opts.Source, opts.ParserOptions...)
		if err != nil {
			return err
		}
		if !store.Commit(gen, catalog) {
			slog.Debug("discarding superseded catalog", "generation", gen)
			return nil
		}
		slog.Info("catalog loaded", "recipes", catalog.Count(), "dropped", catalog.Dropped)
		return nil
	}

	tasks := []func(context.Context) error{
		func(ctx context.Context) error {
			if err := reload(ctx); err != nil {
				if !opts.Watch {
					return err
				}
				slog.Error("initial catalog load failed, waiting for changes", "error", err)
			}
			return nil
		},
	}
	if opts.Watch {
		tasks = append(tasks, NewWatcher(opts.Inputs, defaults.CatalogReloadDebounce, reload).Run)
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithPort(opts.Port),
		server.WithRateLimit(rate.Limit(opts.RateLimit), opts.RateLimitBurst),
		server.WithHandler(NewHandler(store).Routes()),
		server.WithReadinessCheck(store.Ready),
	)

	if err := s.Run(ctx, tasks...); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

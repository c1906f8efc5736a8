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

package convert

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/schafer-family/cookbook/pkg/defaults"
	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/recipe"
	"github.com/schafer-family/cookbook/pkg/serializer"
)

// Options configures a conversion run.
type Options struct {
	// Inputs are source URIs, parsed independently and concatenated in order.
	Inputs []string
	// Output is the destination URI; empty writes to stdout.
	Output string
	// Format is the output encoding; empty means JSON.
	Format serializer.Format
	// ParserOptions apply to every input.
	ParserOptions []recipe.Option
	// MetricsFile, when set, receives the Prometheus registry in textfile
	// format after a successful run. A failed metrics write is logged and
	// does not fail the run.
	MetricsFile string

	// Source reads inputs; nil uses the default SourceReader.
	Source *serializer.SourceReader
	// Destination overrides the serializer resolved from Output.
	Destination serializer.Serializer
	// Gatherer supplies metrics for MetricsFile; nil uses the default registry.
	Gatherer prometheus.Gatherer
}

// Result summarizes a successful run.
type Result struct {
	Count      int            `json:"count" yaml:"count"`
	Dropped    int            `json:"dropped" yaml:"dropped"`
	Categories map[string]int `json:"categories" yaml:"categories"`
	Duration   time.Duration  `json:"duration" yaml:"duration"`
}

// Run reads and parses every input, validates the combined catalog against
// the output contract, and writes it once. Any failure returns before the
// destination is touched.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	if len(opts.Inputs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one input is required")
	}
	format := opts.Format
	if format == "" {
		format = serializer.FormatJSON
	}

	dst := opts.Destination
	if dst == nil {
		var err error
		if dst, err = serializer.NewDestination(format, opts.Output); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.ConvertTimeout)
	defer cancel()

	catalog, err := Load(ctx, opts.Inputs, opts.Source, opts.ParserOptions...)
	if err != nil {
		return nil, err
	}

	if err := dst.Serialize(ctx, catalog.Recipes); err != nil {
		return nil, err
	}
	if c, ok := dst.(serializer.Closer); ok {
		if err := c.Close(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeWriteFailed, "failed to close output", err)
		}
	}

	// The output is committed; a metrics failure is only logged.
	if opts.MetricsFile != "" {
		if err := writeMetrics(opts.MetricsFile, opts.Gatherer); err != nil {
			slog.Warn("metrics file not written", "path", opts.MetricsFile, "error", err)
		}
	}

	res := &Result{
		Count:      catalog.Count(),
		Dropped:    catalog.Dropped,
		Categories: catalog.CategoryCounts(),
		Duration:   time.Since(start),
	}
	slog.Info("conversion complete",
		"inputs", len(opts.Inputs),
		"recipes", res.Count,
		"dropped", res.Dropped,
		"duration", res.Duration)
	return res, nil
}

// Load parses inputs concurrently, merges the catalogs in input order and
// validates the result against the output contract. A nil source uses the
// default SourceReader.
func Load(ctx context.Context, inputs []string, source *serializer.SourceReader, opts ...recipe.Option) (*recipe.Catalog, error) {
	if len(inputs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one input is required")
	}
	if err := checkStdinInputs(inputs); err != nil {
		return nil, err
	}
	if source == nil {
		source = serializer.NewSourceReader()
	}
	parser := recipe.NewParser(opts...)

	catalogs := make([]*recipe.Catalog, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		g.Go(func() error {
			data, err := source.Read(gctx, input)
			if err != nil {
				return err
			}
			cat, err := parser.Parse(bytes.NewReader(data))
			if err != nil {
				return err
			}
			slog.Debug("input parsed", "input", input, "recipes", cat.Count(), "dropped", cat.Dropped)
			catalogs[i] = cat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "conversion canceled", ctxErr)
		}
		return nil, err
	}

	catalog := recipe.Merge(catalogs...)
	if err := recipe.ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// checkStdinInputs rejects more than one stdin input: concurrent readers
// would split the stream nondeterministically.
func checkStdinInputs(inputs []string) error {
	n := 0
	for _, input := range inputs {
		if strings.TrimSpace(input) == serializer.StdoutURI {
			n++
		}
	}
	if n > 1 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "stdin may be given as an input only once",
			map[string]any{"count": n})
	}
	return nil
}

func writeMetrics(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return errors.WrapWithContext(errors.ErrCodeWriteFailed, "failed to write metrics file", err,
			map[string]any{"path": path})
	}
	return nil
}

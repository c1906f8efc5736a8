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

package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/schafer-family/cookbook/pkg/api"
	"github.com/schafer-family/cookbook/pkg/config"
	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/logging"
)

func main() {
	logging.SetDefaultStructuredLogger("cookbookd", api.Version())

	if err := run(context.Background()); err != nil {
		slog.Error("cookbookd failed", "error", err)
		os.Exit(1)
	}
}

// run serves the inputs named by COOKBOOK_INPUT (comma-separated) with the
// configuration from COOKBOOK_CONFIG. PORT and COOKBOOK_WATCH override it.
func run(ctx context.Context) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	var inputs []string
	for _, in := range strings.Split(os.Getenv("COOKBOOK_INPUT"), ",") {
		if in = strings.TrimSpace(in); in != "" {
			inputs = append(inputs, in)
		}
	}
	if len(inputs) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "COOKBOOK_INPUT is required")
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid PORT", map[string]any{"value": v})
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("COOKBOOK_WATCH"); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid COOKBOOK_WATCH", map[string]any{"value": v})
		}
		cfg.Server.Watch = watch
	}

	return api.Serve(ctx, api.Options{
		Inputs:         inputs,
		Port:           cfg.Server.Port,
		RateLimit:      cfg.Server.RateLimit,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		Watch:          cfg.Server.Watch,
		ParserOptions:  cfg.ParserOptions(),
	})
}

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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/schafer-family/cookbook/pkg/api"
)

const (
	flagPort           = "port"
	flagRateLimit      = "rate-limit"
	flagRateLimitBurst = "rate-limit-burst"
	flagWatch          = "watch"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve the recipe catalog over HTTP",
		Description: `Parse the cookbook documents and serve them as a read-only JSON API:

  GET /v1/recipes[?category=Dessert]
  GET /v1/recipes/{id}
  GET /v1/categories
  GET /health, /ready, /metrics

With --watch, local input files are parsed again whenever they change. A
failed reload keeps serving the previous catalog.`,
		Flags: []cli.Flag{
			inputFlag(),
			configFlag(),
			contributorFlag(),
			imageFlag(),
			&cli.IntFlag{
				Name:    flagPort,
				Usage:   "Port to listen on",
				Sources: cli.EnvVars("COOKBOOK_PORT"),
			},
			&cli.FloatFlag{
				Name:  flagRateLimit,
				Usage: "Sustained requests per second",
			},
			&cli.IntFlag{
				Name:  flagRateLimitBurst,
				Usage: "Request burst size",
			},
			&cli.BoolFlag{
				Name:    flagWatch,
				Usage:   "Reload the catalog when a local input file changes",
				Sources: cli.EnvVars("COOKBOOK_WATCH"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return api.Serve(ctx, api.Options{
				Inputs:         cmd.StringSlice(flagInput),
				Port:           cfg.Server.Port,
				RateLimit:      cfg.Server.RateLimit,
				RateLimitBurst: cfg.Server.RateLimitBurst,
				Watch:          cfg.Server.Watch,
				ParserOptions:  parserOptions(cmd, cfg),
			})
		},
	}
}

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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/schafer-family/cookbook/pkg/convert"
	"github.com/schafer-family/cookbook/pkg/oci"
	"github.com/schafer-family/cookbook/pkg/serializer"
)

const (
	flagMetricsFile = "metrics-file"
	flagPlainHTTP   = "plain-http"
	flagInsecureTLS = "insecure-tls"
)

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:                  "convert",
		EnableShellCompletion: true,
		Usage:                 "Convert cookbook markdown into structured recipes",
		Description: `Parse one or more cookbook documents and write the recipes as a single list.

Every "### " heading starts a recipe. Recipes without ingredients are dropped and
every remaining recipe is assigned a category from its title. Inputs are parsed
independently and their recipes are concatenated in input order. Nothing is
written unless every input is read and parsed.

# Examples

Convert to JSON on stdout:
  cookbook convert --input cookbook.md

Merge two documents into a file:
  cookbook convert -i family.md -i holidays.md -o recipes.json

Publish to a ConfigMap as YAML:
  cookbook convert -i cookbook.md -o cm://kitchen/recipes --format yaml

Push to an OCI registry:
  cookbook convert -i cookbook.md -o oci://ghcr.io/schafer-family/recipes:latest`,
		Flags: []cli.Flag{
			inputFlag(),
			outputFlag(),
			formatFlag(""),
			configFlag(),
			contributorFlag(),
			imageFlag(),
			&cli.StringFlag{
				Name:  flagMetricsFile,
				Usage: "Write parse metrics in Prometheus textfile format to this path",
			},
			&cli.BoolFlag{
				Name:  flagPlainHTTP,
				Usage: "Use HTTP instead of HTTPS for OCI outputs",
			},
			&cli.BoolFlag{
				Name:  flagInsecureTLS,
				Usage: "Skip TLS verification for OCI outputs",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format := serializer.Format(cfg.Output.Format)

			dst, err := serializer.NewDestination(format, cfg.Output.Path)
			if err != nil {
				return err
			}
			if w, ok := dst.(*serializer.OCIWriter); ok {
				w.WithPushOptions(oci.PushOptions{
					PlainHTTP:   cmd.Bool(flagPlainHTTP),
					InsecureTLS: cmd.Bool(flagInsecureTLS),
				})
			}

			res, err := convert.Run(ctx, convert.Options{
				Inputs:        cmd.StringSlice(flagInput),
				Output:        cfg.Output.Path,
				Format:        format,
				ParserOptions: parserOptions(cmd, cfg),
				MetricsFile:   cmd.String(flagMetricsFile),
				Destination:   dst,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(errWriter(cmd), "Converted %d recipes\n", res.Count)
			return nil
		},
	}
}

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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/schafer-family/cookbook/pkg/recipe"
	"github.com/schafer-family/cookbook/pkg/serializer"
)

func imagesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "images",
		EnableShellCompletion: true,
		Usage:                 "List recipes that still use a placeholder image",
		Description: `Read a converted recipe list and report every recipe whose image is the
default converter image or a generated stock placeholder. Images stored under
/recipe-images/ are real photos and never reported.

# Examples

  cookbook images --input recipes.json
  cookbook images -i https://example.com/recipes.yaml --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagInput,
				Aliases:  []string{"i"},
				Required: true,
				Usage: `Path/URI to a converted recipe list (JSON or YAML).
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
			},
			outputFlag(),
			formatFlag(string(serializer.FormatTable)),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			input := cmd.String(flagInput)
			recipes, err := serializer.FromFile[[]*recipe.Recipe](ctx, input)
			if err != nil {
				return err
			}

			placeholders := recipe.PlaceholderRecipes(*recipes)
			slog.Info("placeholder images checked",
				"input", input,
				"recipes", len(*recipes),
				"placeholders", len(placeholders))

			dst, err := serializer.NewDestination(format, cmd.String(flagOutput))
			if err != nil {
				return err
			}
			if err := dst.Serialize(ctx, placeholders); err != nil {
				return err
			}

			fmt.Fprintf(errWriter(cmd), "%d of %d recipes use a placeholder image\n", len(placeholders), len(*recipes))
			return nil
		},
	}
}

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

	"github.com/schafer-family/cookbook/pkg/convert"
	"github.com/schafer-family/cookbook/pkg/recipe"
	"github.com/schafer-family/cookbook/pkg/serializer"
)

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "categories",
		EnableShellCompletion: true,
		Usage:                 "List the recipe categories",
		Description: `Print the closed set of recipe categories in display order. With --input
the documents are parsed and each category shows how many recipes it holds.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    flagInput,
				Aliases: []string{"i"},
				Usage:   "Cookbook document to count recipes from; repeat for several documents",
			},
			formatFlag(string(serializer.FormatTable)),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if format == serializer.FormatJSONLD {
				format = serializer.FormatJSON
			}

			var catalog *recipe.Catalog
			if inputs := cmd.StringSlice(flagInput); len(inputs) > 0 {
				if catalog, err = convert.Load(ctx, inputs, nil); err != nil {
					return err
				}
			}

			return serializer.NewWriter(format, cmd.Root().Writer).Serialize(ctx, catalog.Summaries())
		},
	}
}

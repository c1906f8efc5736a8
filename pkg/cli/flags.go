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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/schafer-family/cookbook/pkg/config"
	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/recipe"
	"github.com/schafer-family/cookbook/pkg/serializer"
)

const (
	flagInput       = "input"
	flagOutput      = "output"
	flagFormat      = "format"
	flagConfig      = "config"
	flagContributor = "contributor"
	flagImage       = "image"
)

var formatUsage = fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", "))

// Flags are built per command: a urfave flag keeps its parse state.

func inputFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     flagInput,
		Aliases:  []string{"i"},
		Required: true,
		Usage: `Cookbook document to read; repeat for several documents, parsed in order.
	Supports: file paths, "-" for stdin, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
		Sources: cli.EnvVars("COOKBOOK_INPUT"),
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: `Output destination (default: stdout).
	Supports: file paths, ConfigMap URIs (cm://namespace/name), or OCI references (oci://registry/repository:tag).`,
		Sources: cli.EnvVars("COOKBOOK_OUTPUT"),
	}
}

// formatFlag leaves the default to the configuration unless value is set.
func formatFlag(value string) *cli.StringFlag {
	f := &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Usage:   formatUsage,
		Value:   value,
	}
	if value == "" {
		f.Sources = cli.EnvVars("COOKBOOK_FORMAT")
	}
	return f
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"c"},
		Usage:   "Path to the YAML configuration file",
		Sources: cli.EnvVars(config.EnvVarConfig),
	}
}

func contributorFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagContributor,
		Usage:   "Contributor assigned to recipes without a Contributor line",
		Sources: cli.EnvVars("COOKBOOK_CONTRIBUTOR"),
	}
}

func imageFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    flagImage,
		Usage:   "Image URL assigned to every converted recipe",
		Sources: cli.EnvVars("COOKBOOK_IMAGE"),
	}
}

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(strings.ToLower(cmd.String(flagFormat)))
	if format.IsUnknown() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", cmd.String(flagFormat)),
			map[string]any{"supported": serializer.SupportedFormats()})
	}
	return format, nil
}

// parserOptions returns the parser defaults from cfg. A contributor or image
// the user set by flag or environment variable also outranks document front
// matter; a config file value does not.
func parserOptions(cmd *cli.Command, cfg *config.Config) []recipe.Option {
	opts := cfg.ParserOptions()
	if cmd.IsSet(flagContributor) {
		opts = append(opts, recipe.WithContributorOverride(cfg.Defaults.Contributor))
	}
	if cmd.IsSet(flagImage) {
		opts = append(opts, recipe.WithImageOverride(cfg.Defaults.Image))
	}
	return opts
}

// loadConfig reads the configuration file, then applies every flag the user
// set, explicitly or through its environment variable. The merged result is
// validated again so flag values get the same checks as file values.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(flagConfig))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet(flagContributor) {
		cfg.Defaults.Contributor = cmd.String(flagContributor)
	}
	if cmd.IsSet(flagImage) {
		cfg.Defaults.Image = cmd.String(flagImage)
	}
	if cmd.IsSet(flagFormat) {
		cfg.Output.Format = strings.ToLower(cmd.String(flagFormat))
	}
	if cmd.IsSet(flagOutput) {
		cfg.Output.Path = cmd.String(flagOutput)
	}
	if cmd.IsSet(flagPort) {
		cfg.Server.Port = cmd.Int(flagPort)
	}
	if cmd.IsSet(flagRateLimit) {
		cfg.Server.RateLimit = cmd.Float(flagRateLimit)
	}
	if cmd.IsSet(flagRateLimitBurst) {
		cfg.Server.RateLimitBurst = cmd.Int(flagRateLimitBurst)
	}
	if cmd.IsSet(flagWatch) {
		cfg.Server.Watch = cmd.Bool(flagWatch)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("invalid option: %v", err), err)
	}
	return cfg, nil
}

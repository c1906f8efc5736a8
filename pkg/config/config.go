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

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"

	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/recipe"
	"github.com/schafer-family/cookbook/pkg/serializer"
)

const (
	// EnvVarConfig names the configuration file when --config is not given.
	EnvVarConfig = "COOKBOOK_CONFIG"

	// DefaultPort is the catalog API port.
	DefaultPort = 8080
	// DefaultRateLimit is the sustained request rate per second.
	DefaultRateLimit = 100
	// DefaultRateLimitBurst is the request burst size.
	DefaultRateLimitBurst = 200
)

// Config is the cookbook tool configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Output   OutputConfig   `yaml:"output"`
	Server   ServerConfig   `yaml:"server"`
}

// DefaultsConfig holds the values assigned to records that do not set them.
type DefaultsConfig struct {
	Contributor string `yaml:"contributor"`
	Image       string `yaml:"image"`
}

// OutputConfig selects where and how converted recipes are written.
// An empty Path means stdout.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// ServerConfig configures the catalog API.
type ServerConfig struct {
	Port           int     `yaml:"port"`
	RateLimit      float64 `yaml:"rateLimit"`
	RateLimitBurst int     `yaml:"rateLimitBurst"`
	Watch          bool    `yaml:"watch"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Contributor: recipe.DefaultContributor,
			Image:       recipe.DefaultImage,
		},
		Output: OutputConfig{
			Format: string(serializer.FormatJSON),
		},
		Server: ServerConfig{
			Port:           DefaultPort,
			RateLimit:      DefaultRateLimit,
			RateLimitBurst: DefaultRateLimitBurst,
		},
	}
}

// Load reads the YAML file at path over the built-in defaults and validates
// the result. An empty path falls back to COOKBOOK_CONFIG and then to the
// defaults alone.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVarConfig)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeReadFailed, "failed to read config file", err,
			map[string]any{"path": path})
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Debug("configuration loaded", "path", path)
	return cfg, nil
}

// Parse decodes YAML configuration over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("invalid config: %v", err), err)
	}
	return cfg, nil
}

// Validate implements validation.Validatable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Defaults),
		validation.Field(&c.Output),
		validation.Field(&c.Server),
	)
}

// Validate implements validation.Validatable.
func (d DefaultsConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Contributor, validation.Required),
		validation.Field(&d.Image, validation.Required, is.URL),
	)
}

// Validate implements validation.Validatable.
func (o OutputConfig) Validate() error {
	formats := make([]any, 0, len(serializer.SupportedFormats()))
	for _, f := range serializer.SupportedFormats() {
		formats = append(formats, f)
	}
	return validation.ValidateStruct(&o,
		validation.Field(&o.Format, validation.Required, validation.In(formats...)),
	)
}

// Validate implements validation.Validatable.
func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.RateLimit, validation.Min(0.0)),
		validation.Field(&s.RateLimitBurst, validation.Min(0)),
	)
}

// ParserOptions returns the record defaults as parser options.
func (c *Config) ParserOptions() []recipe.Option {
	return []recipe.Option{
		recipe.WithContributor(c.Defaults.Contributor),
		recipe.WithImage(c.Defaults.Image),
	}
}

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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schafer-family/cookbook/pkg/errors"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//   - .jsonld → FormatJSONLD
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".jsonld"):
		return FormatJSONLD
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Debug("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader decodes JSON or YAML from an io.Reader. Table and JSON-LD are
// write-only formats.
type Reader struct {
	format Format
	input  io.Reader
}

// NewReader creates a new Reader for deserializing data from input.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return &Reader{format: format, input: input}, nil
	case FormatTable, FormatJSONLD:
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s format does not support deserialization", format))
	default:
		return nil, errors.New(errors.ErrCodeInvalidRequest, fmt.Sprintf("unknown format: %s", format))
	}
}

// Deserialize reads data from the input source and unmarshals it into v.
func (r *Reader) Deserialize(v any) error {
	if r == nil || r.input == nil {
		return errors.New(errors.ErrCodeInternal, "reader has no input")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode JSON", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode YAML", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidRequest, fmt.Sprintf("unsupported format for deserialization: %s", r.format))
	}
	return nil
}

// FromFile reads and deserializes data from a file path, HTTP URL, ConfigMap
// URI, or "-" for stdin into type T. The format comes from the path
// extension; ConfigMap content is decoded as JSON.
//
// Example:
//
//	recipes, err := FromFile[[]*recipe.Recipe](ctx, "recipes.json")
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	data, err := ReadSource(ctx, path)
	if err != nil {
		return nil, err
	}

	format := FormatJSON
	if !strings.HasPrefix(path, ConfigMapURIScheme) {
		format = FormatFromPath(path)
	}
	if format == FormatJSONLD || format == FormatTable {
		format = FormatJSON
	}

	reader, err := NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var result T
	if err := reader.Deserialize(&result); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to deserialize object from %q", path), err,
			map[string]any{"path": path, "format": string(format)})
	}

	slog.Debug("successfully loaded object", slog.String("path", path))
	return &result, nil
}

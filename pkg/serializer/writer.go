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
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/recipe"
)

// Format represents the output format type
type Format string

const (
	// FormatJSON outputs the recipe array as indented JSON
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs a human-readable table
	FormatTable Format = "table"
	// FormatJSONLD outputs schema.org Recipe structured data
	FormatJSONLD Format = "jsonld"
)

const defaultValueKey = "value"

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable, FormatJSONLD:
		return false
	default:
		return true
	}
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTable:
		return "txt"
	case FormatJSONLD:
		return "jsonld"
	default:
		return "json"
	}
}

// MediaType returns the media type of encoded output.
func (f Format) MediaType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatTable:
		return "text/plain"
	case FormatJSONLD:
		return "application/ld+json"
	default:
		return "application/json"
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
		string(FormatJSONLD),
	}
}

// Marshal encodes v in format. Recipe slices and catalogs get a recipe table
// and schema.org conversion; other values use the generic encoders.
func Marshal(format Format, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		return serializeJSON(v)
	case FormatYAML:
		return serializeYAML(v)
	case FormatTable:
		return serializeTable(v)
	case FormatJSONLD:
		return serializeJSONLD(v)
	default:
		return nil, errors.New(errors.ErrCodeInvalidRequest, fmt.Sprintf("unsupported format: %s", format))
	}
}

// Writer writes encoded values to an io.Writer.
type Writer struct {
	format Format
	output io.Writer
}

// NewWriter creates a new Writer with the specified format and output destination.
// If output is nil, os.Stdout will be used. Unknown formats are rejected by Serialize.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// Serialize encodes v completely and then writes it with a single call.
func (w *Writer) Serialize(_ context.Context, v any) error {
	content, err := Marshal(w.format, v)
	if err != nil {
		return err
	}
	if _, err := w.output.Write(content); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, "failed to write output", err)
	}
	return nil
}

func serializeJSON(data any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to serialize to JSON", err)
	}
	return buf.Bytes(), nil
}

func serializeYAML(data any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to serialize to YAML", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to serialize to YAML", err)
	}
	return buf.Bytes(), nil
}

func serializeJSONLD(data any) ([]byte, error) {
	recipes, ok := asRecipes(data)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("jsonld output requires recipes, got %T", data))
	}
	return serializeJSON(recipe.CatalogToSchemaOrg(recipe.NewCatalog(recipes, 0), ""))
}

// asRecipes extracts the recipe list from the value shapes the tools write.
func asRecipes(data any) ([]*recipe.Recipe, bool) {
	switch v := data.(type) {
	case []*recipe.Recipe:
		return v, true
	case *recipe.Catalog:
		if v == nil {
			return []*recipe.Recipe{}, true
		}
		return v.Recipes, true
	default:
		return nil, false
	}
}

func serializeTable(data any) ([]byte, error) {
	var builder strings.Builder
	tw := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	if recipes, ok := asRecipes(data); ok {
		writeRecipeTable(tw, recipes)
	} else if summaries, ok := data.([]recipe.CategorySummary); ok {
		writeCategoryTable(tw, summaries)
	} else if !writeFlatTable(tw, data) {
		return []byte("<empty>\n"), nil
	}

	if err := tw.Flush(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to flush table", err)
	}
	return []byte(builder.String()), nil
}

func writeRecipeTable(w io.Writer, recipes []*recipe.Recipe) {
	fmt.Fprintln(w, "TITLE\tCONTRIBUTOR\tCATEGORY\tINGREDIENTS\tSTEPS\tID")
	for _, r := range recipes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.Title, r.Contributor, r.Category, len(r.Ingredients), len(r.Instructions), r.ID)
	}
}

func writeCategoryTable(w io.Writer, summaries []recipe.CategorySummary) {
	fmt.Fprintln(w, "CATEGORY\tRECIPES")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\n", s.Name, s.Count)
	}
}

func writeFlatTable(w io.Writer, data any) bool {
	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(data), "")
	if len(flat) == 0 {
		return false
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, "FIELD\tVALUE")
	fmt.Fprintln(w, "-----\t-----")
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, flat[key])
	}
	return true
}

func flattenValue(out map[string]any, val reflect.Value, prefix string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if prefix != "" {
				out[prefix] = nil
			}
			return
		}
		val = val.Elem()
	}

	//nolint:exhaustive // We handle the common cases explicitly; all others go to default
	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			flattenValue(out, val.Field(i), joinKey(prefix, field.Name))
		}
	case reflect.Map:
		for _, mapKey := range val.MapKeys() {
			flattenValue(out, val.MapIndex(mapKey), joinKey(prefix, fmt.Sprintf("%v", mapKey.Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			flattenValue(out, val.Index(i), joinKey(prefix, fmt.Sprintf("[%d]", i)))
		}
	default:
		if prefix == "" {
			prefix = defaultValueKey
		}
		out[prefix] = val.Interface()
	}
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	return prefix + "." + suffix
}

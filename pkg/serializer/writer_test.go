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
	stderrors "errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/recipe"
)

func testRecipes() []*recipe.Recipe {
	return []*recipe.Recipe{
		{
			ID:           "id-1",
			Title:        "Festive Apple Dip",
			Contributor:  "Jane",
			Category:     recipe.CategoryDipSauce,
			Ingredients:  []string{"1 cup cream cheese", "1/2 cup caramel"},
			Instructions: []string{"Mix ingredients", "Chill 1 hour"},
			Image:        recipe.DefaultImage,
			Notes:        "Best served warm & cold.",
		},
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("format %q reported unknown", f)
		}
	}
	if !Format("xml").IsUnknown() {
		t.Error("xml should be unknown")
	}
}

func TestFormat_ExtensionAndMediaType(t *testing.T) {
	tests := []struct {
		format    Format
		ext       string
		mediaType string
	}{
		{FormatJSON, "json", "application/json"},
		{FormatYAML, "yaml", "application/yaml"},
		{FormatTable, "txt", "text/plain"},
		{FormatJSONLD, "jsonld", "application/ld+json"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.ext {
				t.Errorf("Extension() = %q, want %q", got, tt.ext)
			}
			if got := tt.format.MediaType(); got != tt.mediaType {
				t.Errorf("MediaType() = %q, want %q", got, tt.mediaType)
			}
		})
	}
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(context.Background(), testRecipes()); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "[\n  {\n    \"id\": \"id-1\"") {
		t.Errorf("unexpected JSON layout:\n%s", out)
	}
	if !strings.Contains(out, "warm & cold") {
		t.Error("HTML characters should not be escaped")
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0]["category"] != "Dip/Sauce" {
		t.Errorf("unexpected decoded output: %v", got)
	}
}

func TestWriter_EmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(context.Background(), []*recipe.Recipe{}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty list = %q, want []", got)
	}
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatYAML, &buf).Serialize(context.Background(), testRecipes()); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var got []recipe.Recipe
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Festive Apple Dip" {
		t.Errorf("unexpected decoded output: %+v", got)
	}
}

func TestWriter_RecipeTable(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), testRecipes()); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "TITLE") {
		t.Errorf("unexpected header %q", lines[0])
	}
	for _, want := range []string{"Festive Apple Dip", "Jane", "Dip/Sauce", "id-1"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row %q missing %q", lines[1], want)
		}
	}
}

func TestWriter_CategoryTable(t *testing.T) {
	var buf bytes.Buffer
	summaries := []recipe.CategorySummary{{Name: "Main", Count: 4}, {Name: "Snack", Count: 0}}
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), summaries); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "CATEGORY") || !strings.Contains(lines[1], "4") {
		t.Errorf("unexpected table:\n%s", buf.String())
	}
}

func TestWriter_FlatTable(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"recipes": 3, "categories": map[string]int{"Main": 2}}
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "categories.Main", "recipes"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_FlatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), map[string]any{}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if buf.String() != "<empty>\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriter_JSONLD(t *testing.T) {
	var buf bytes.Buffer
	cat := recipe.NewCatalog(testRecipes(), 0)
	if err := NewWriter(FormatJSONLD, &buf).Serialize(context.Background(), cat); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0]["@type"] != "Recipe" || got[0]["name"] != "Festive Apple Dip" {
		t.Errorf("unexpected JSON-LD: %v", got)
	}
}

func TestWriter_JSONLDRejectsOtherValues(t *testing.T) {
	err := NewWriter(FormatJSONLD, &bytes.Buffer{}).Serialize(context.Background(), map[string]string{})
	if !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("pipe closed") }

func TestWriter_WriteFailure(t *testing.T) {
	err := NewWriter(FormatJSON, failingWriter{}).Serialize(context.Background(), testRecipes())
	if !errors.IsCode(err, errors.ErrCodeWriteFailed) {
		t.Errorf("expected WRITE_FAILED, got %v", err)
	}
}

type countingWriter struct {
	writes int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.writes++
	return len(p), nil
}

func TestWriter_SingleWrite(t *testing.T) {
	w := &countingWriter{}
	if err := NewWriter(FormatJSON, w).Serialize(context.Background(), testRecipes()); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if w.writes != 1 {
		t.Errorf("expected a single write, got %d", w.writes)
	}
}

func TestMarshal_UnknownFormat(t *testing.T) {
	_, err := Marshal(Format("xml"), testRecipes())
	if !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
}

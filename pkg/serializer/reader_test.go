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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/recipe"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"recipes.json", FormatJSON},
		{"RECIPES.JSON", FormatJSON},
		{"recipes.yaml", FormatYAML},
		{"recipes.yml", FormatYAML},
		{"recipes.txt", FormatTable},
		{"recipes.table", FormatTable},
		{"recipes.jsonld", FormatJSONLD},
		{"recipes", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader_Formats(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		if _, err := NewReader(f, strings.NewReader("")); err != nil {
			t.Errorf("NewReader(%s) error = %v", f, err)
		}
	}
	for _, f := range []Format{FormatTable, FormatJSONLD, Format("xml")} {
		if _, err := NewReader(f, strings.NewReader("")); !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
			t.Errorf("NewReader(%s) expected INVALID_REQUEST, got %v", f, err)
		}
	}
}

func TestReader_Deserialize(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("- title: Toast\n  category: Breakfast\n"))
	if err != nil {
		t.Fatal(err)
	}
	var got []recipe.Recipe
	if err := r.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if len(got) != 1 || got[0].Category != recipe.CategoryBreakfast {
		t.Errorf("unexpected result %+v", got)
	}

	r, _ = NewReader(FormatJSON, strings.NewReader("{not json"))
	if err := r.Deserialize(&got); !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
}

func TestFromFile_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "recipes."+format.Extension())
			if err := NewFileWriter(format, path).Serialize(context.Background(), testRecipes()); err != nil {
				t.Fatal(err)
			}

			got, err := FromFile[[]*recipe.Recipe](context.Background(), path)
			if err != nil {
				t.Fatalf("FromFile() error = %v", err)
			}
			if len(*got) != 1 || (*got)[0].Title != "Festive Apple Dip" {
				t.Errorf("unexpected result %+v", *got)
			}
		})
	}
}

func TestFromFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	if err := os.WriteFile(path, []byte("### not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := FromFile[[]*recipe.Recipe](context.Background(), path)
	if !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
}

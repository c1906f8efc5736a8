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

package recipe

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Line
	}{
		{"empty", "", Line{Kind: LineBlank}},
		{"whitespace", "   \t", Line{Kind: LineBlank}},
		{"rule dashes", "---", Line{Kind: LineBlank}},
		{"rule long", "-----", Line{Kind: LineBlank}},
		{"rule spaced stars", "* * *", Line{Kind: LineBlank}},
		{"rule underscores", "___", Line{Kind: LineBlank}},
		{"heading", "### Festive Apple Dip", Line{Kind: LineHeading, Text: "Festive Apple Dip"}},
		{"heading padded", "  ###   Chili  ", Line{Kind: LineHeading, Text: "Chili"}},
		{"h2 is plain", "## The Schafer Family", Line{Kind: LinePlain, Text: "## The Schafer Family"}},
		{"contributor", "**Contributor:** Jane", Line{Kind: LineField, Field: FieldContributor, Text: "Jane"}},
		{"ingredients", "**Ingredients:**", Line{Kind: LineField, Field: FieldIngredients}},
		{"instructions", "**Instructions:**", Line{Kind: LineField, Field: FieldInstructions}},
		{"notes with text", "**Notes:** Best served warm.", Line{Kind: LineField, Field: FieldNotes, Text: "Best served warm."}},
		{"unknown label", "**Serves:** 4", Line{Kind: LinePlain, Text: "**Serves:** 4"}},
		{"dash item", "- 1 cup sugar", Line{Kind: LineDashItem, Text: "1 cup sugar"}},
		{"dash no space", "-1 cup", Line{Kind: LinePlain, Text: "-1 cup"}},
		{"numbered", "2. Preheat oven", Line{Kind: LineNumberedItem, Text: "Preheat oven"}},
		{"numbered no space", "10.Stir", Line{Kind: LineNumberedItem, Text: "Stir"}},
		{"numbered empty", "3.", Line{Kind: LineNumberedItem, Text: ""}},
		{"decimal in prose", "1.5 cups flour", Line{Kind: LineNumberedItem, Text: "5 cups flour"}},
		{"plain", "Grandma always doubled it.", Line{Kind: LinePlain, Text: "Grandma always doubled it."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLine(tt.input)
			if got != tt.want {
				t.Errorf("ClassifyLine(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLineKind_String(t *testing.T) {
	if LineHeading.String() != "heading" {
		t.Errorf("LineHeading.String() = %q", LineHeading.String())
	}
	if LineKind(99).String() != "unknown" {
		t.Errorf("LineKind(99).String() = %q", LineKind(99).String())
	}
}

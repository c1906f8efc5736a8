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

import (
	"regexp"
	"strings"
)

// LineKind is the structural classification of a single document line.
type LineKind int

const (
	// LineBlank is an empty line or a horizontal rule.
	LineBlank LineKind = iota
	// LineHeading opens a new record ("### Title").
	LineHeading
	// LineField is one of the bolded labels ("**Ingredients:**").
	LineField
	// LineDashItem is a "- " list entry.
	LineDashItem
	// LineNumberedItem is a "1." list entry.
	LineNumberedItem
	// LinePlain is anything else.
	LinePlain
)

var lineKindNames = [...]string{"blank", "heading", "field", "dash-item", "numbered-item", "plain"}

// String returns a short name for the kind, used in debug logs.
func (k LineKind) String() string {
	if k < 0 || int(k) >= len(lineKindNames) {
		return "unknown"
	}
	return lineKindNames[k]
}

// FieldKind identifies which bolded label a LineField carries.
type FieldKind int

const (
	FieldNone FieldKind = iota
	FieldContributor
	FieldIngredients
	FieldInstructions
	FieldNotes
)

// Line is a trimmed document line together with its classification.
// Text is the heading title, the label's trailing text, or the list item
// with its marker removed, depending on Kind.
type Line struct {
	Kind  LineKind
	Field FieldKind
	Text  string
}

const (
	headingMarker = "### "
	dashMarker    = "- "
)

var fieldLabels = []struct {
	label string
	kind  FieldKind
}{
	{"**Contributor:**", FieldContributor},
	{"**Ingredients:**", FieldIngredients},
	{"**Instructions:**", FieldInstructions},
	{"**Notes:**", FieldNotes},
}

var (
	horizontalRule = regexp.MustCompile(`^(?:(?:-\s*){3,}|(?:\*\s*){3,}|(?:_\s*){3,})$`)
	numberedPrefix = regexp.MustCompile(`^\d+\.\s*`)
)

// ClassifyLine maps a raw line to exactly one structural kind. It is total and
// has no side effects; the input is trimmed before matching.
func ClassifyLine(raw string) Line {
	line := strings.TrimSpace(raw)

	if line == "" || horizontalRule.MatchString(line) {
		return Line{Kind: LineBlank}
	}

	if strings.HasPrefix(line, headingMarker) {
		return Line{Kind: LineHeading, Text: strings.TrimSpace(line[len(headingMarker):])}
	}

	for _, f := range fieldLabels {
		if strings.HasPrefix(line, f.label) {
			return Line{
				Kind:  LineField,
				Field: f.kind,
				Text:  strings.TrimSpace(line[len(f.label):]),
			}
		}
	}

	if strings.HasPrefix(line, dashMarker) {
		return Line{Kind: LineDashItem, Text: strings.TrimSpace(line[len(dashMarker):])}
	}

	if loc := numberedPrefix.FindStringIndex(line); loc != nil {
		return Line{Kind: LineNumberedItem, Text: line[loc[1]:]}
	}

	return Line{Kind: LinePlain, Text: line}
}

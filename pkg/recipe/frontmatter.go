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
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// DocumentMeta holds document-wide defaults declared in a leading YAML block:
//
//	---
//	contributor: Grandma Schafer
//	image: https://example.com/cookbook.jpg
//	---
type DocumentMeta struct {
	Contributor string `yaml:"contributor"`
	Image       string `yaml:"image"`
}

func (m *DocumentMeta) empty() bool {
	return m == nil || (m.Contributor == "" && m.Image == "")
}

// Only YAML is accepted; a cookbook may well open with "{" or "+++" prose.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", decodeDocumentMeta)

// decodeDocumentMeta accepts only the DocumentMeta keys and refuses blocks that
// hold cookbook lines, so a horizontal rule above a recipe is never metadata.
func decodeDocumentMeta(data []byte, v any) error {
	for _, raw := range splitLines(data) {
		switch line := ClassifyLine(raw); line.Kind {
		case LineHeading, LineField, LineDashItem, LineNumberedItem:
			return fmt.Errorf("cookbook content in front matter: %q", strings.TrimSpace(raw))
		}
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// splitFrontMatter returns the document body and its metadata. Documents
// without usable front matter are returned unchanged with nil metadata, so a
// leading horizontal rule or a block that does not decode is plain content.
func splitFrontMatter(data []byte) ([]byte, *DocumentMeta) {
	var meta DocumentMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta, yamlFrontMatter)
	if err != nil {
		slog.Debug("ignoring undecodable front matter", "error", err)
		return data, nil
	}
	if meta.empty() {
		return data, nil
	}
	meta.Contributor = strings.TrimSpace(meta.Contributor)
	meta.Image = strings.TrimSpace(meta.Image)
	return body, &meta
}

// withMeta returns a copy of p with the document defaults applied to every
// field not fixed by an Override option.
func (p *Parser) withMeta(meta *DocumentMeta) *Parser {
	cp := *p
	if !cp.contributorFixed {
		WithContributor(meta.Contributor)(&cp)
	}
	if !cp.imageFixed {
		WithImage(meta.Image)(&cp)
	}
	return &cp
}

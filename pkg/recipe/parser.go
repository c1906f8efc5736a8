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
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/schafer-family/cookbook/pkg/errors"
)

// section is the labeled body that list and prose lines currently feed.
type section int

const (
	sectionNone section = iota
	sectionIngredients
	sectionInstructions
	sectionNotes
)

// Option is a functional option for configuring Parser instances.
type Option func(*Parser)

// WithContributor sets the contributor assigned to records that never name one.
func WithContributor(name string) Option {
	return func(p *Parser) {
		if name != "" {
			p.contributor = name
		}
	}
}

// WithImage sets the image URL assigned to every record.
func WithImage(url string) Option {
	return func(p *Parser) {
		if url != "" {
			p.image = url
		}
	}
}

// WithContributorOverride sets the contributor like WithContributor and keeps
// document front matter from replacing it.
func WithContributorOverride(name string) Option {
	return func(p *Parser) {
		if name != "" {
			p.contributor = name
			p.contributorFixed = true
		}
	}
}

// WithImageOverride sets the image like WithImage and keeps document front
// matter from replacing it.
func WithImageOverride(url string) Option {
	return func(p *Parser) {
		if url != "" {
			p.image = url
			p.imageFixed = true
		}
	}
}

// WithIDGenerator replaces the record identifier source. The generator must
// return a distinct value on every call.
func WithIDGenerator(fn func() string) Option {
	return func(p *Parser) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// Parser folds cookbook documents into recipe records.
// A Parser holds only configuration, so one value may be shared by goroutines;
// every parse owns its fold state.
type Parser struct {
	contributor string
	image       string
	newID       func() string

	// set by the Override options; front matter leaves these fields alone
	contributorFixed bool
	imageFixed       bool
}

// NewParser creates a Parser with the fixed defaults, adjusted by opts.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		contributor: DefaultContributor,
		image:       DefaultImage,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the whole document from r and returns the categorized catalog.
// A leading front matter block may replace the contributor and image defaults
// for this document, except those set with an Override option. Read failures are reported as ErrCodeReadFailed; malformed
// content never is.
func (p *Parser) Parse(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeReadFailed, "failed to read cookbook document", err)
	}
	return p.ParseDocument(data), nil
}

// ParseDocument parses an in-memory document.
func (p *Parser) ParseDocument(data []byte) *Catalog {
	parser := p
	body, meta := splitFrontMatter(data)
	if meta != nil {
		parser = p.withMeta(meta)
	}
	return parser.ParseLines(splitLines(body))
}

// ParseLines folds lines into records, drops records without ingredients and
// categorizes the rest. Records keep the order of their headings.
func (p *Parser) ParseLines(lines []string) *Catalog {
	start := time.Now()

	f := &fold{parser: p}
	for _, raw := range lines {
		f.step(ClassifyLine(raw))
	}
	f.finalize()

	kept, dropped := Categorize(f.pending)

	recordParseMetrics(kept, dropped, time.Since(start))
	slog.Debug("cookbook parsed",
		"lines", len(lines),
		"headings", len(f.pending),
		"recipes", len(kept),
		"dropped", dropped)

	return NewCatalog(kept, dropped)
}

// newRecord creates the in-progress record opened by a heading.
func (p *Parser) newRecord(title string) *Recipe {
	return &Recipe{
		ID:           p.newID(),
		Title:        title,
		Contributor:  p.contributor,
		Category:     DefaultCategory,
		Ingredients:  []string{},
		Instructions: []string{},
		Image:        p.image,
	}
}

// fold is the state threaded through one pass over a document.
type fold struct {
	parser  *Parser
	current *Recipe
	section section
	pending []*Recipe
}

func (f *fold) step(l Line) {
	switch l.Kind {
	case LineBlank:
		return
	case LineHeading:
		f.finalize()
		f.current = f.parser.newRecord(l.Text)
		f.section = sectionNone
		return
	}

	// Lines before the first heading are discarded.
	if f.current == nil {
		return
	}

	switch l.Kind {
	case LineField:
		f.field(l)
	case LineDashItem:
		if f.section == sectionIngredients {
			f.current.Ingredients = append(f.current.Ingredients, l.Text)
		}
	case LineNumberedItem:
		if f.section == sectionInstructions && l.Text != "" {
			f.current.Instructions = append(f.current.Instructions, l.Text)
		}
	case LinePlain:
		if f.section == sectionNotes {
			f.current.Notes += " " + l.Text
		}
	}
}

func (f *fold) field(l Line) {
	switch l.Field {
	case FieldContributor:
		f.current.Contributor = l.Text
		f.section = sectionNone
	case FieldIngredients:
		f.section = sectionIngredients
	case FieldInstructions:
		f.section = sectionInstructions
	case FieldNotes:
		f.current.Notes = l.Text
		f.section = sectionNotes
	}
}

// finalize closes the in-progress record, if any, onto the pending sequence.
func (f *fold) finalize() {
	if f.current == nil {
		return
	}
	f.pending = append(f.pending, f.current)
	f.current = nil
	f.section = sectionNone
}

// splitLines splits on LF and CRLF. Line content is trimmed by ClassifyLine.
func splitLines(data []byte) []string {
	lines := make([]string, 0, bytes.Count(data, []byte{'\n'})+1)
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

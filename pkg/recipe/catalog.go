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

// Catalog is the ordered output of one or more parses. It is not mutated
// after construction and is safe for concurrent readers.
type Catalog struct {
	// Recipes are the accepted records, in heading order. Never nil.
	Recipes []*Recipe
	// Dropped counts headings discarded by the validity filter.
	Dropped int

	byID map[string]*Recipe
}

// NewCatalog builds a catalog over recipes.
func NewCatalog(recipes []*Recipe, dropped int) *Catalog {
	if recipes == nil {
		recipes = []*Recipe{}
	}
	c := &Catalog{
		Recipes: recipes,
		Dropped: dropped,
		byID:    make(map[string]*Recipe, len(recipes)),
	}
	for _, r := range recipes {
		c.byID[r.ID] = r
	}
	return c
}

// Merge concatenates catalogs in argument order.
func Merge(catalogs ...*Catalog) *Catalog {
	var (
		recipes []*Recipe
		dropped int
	)
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		recipes = append(recipes, c.Recipes...)
		dropped += c.Dropped
	}
	return NewCatalog(recipes, dropped)
}

// Count returns the number of accepted recipes.
func (c *Catalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.Recipes)
}

// ByID returns the recipe with the given id.
func (c *Catalog) ByID(id string) (*Recipe, bool) {
	if c == nil {
		return nil, false
	}
	r, ok := c.byID[id]
	return r, ok
}

// ByCategory returns the recipes in category, in catalog order.
func (c *Catalog) ByCategory(category Category) []*Recipe {
	out := []*Recipe{}
	if c == nil {
		return out
	}
	for _, r := range c.Recipes {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// CategoryCounts returns the number of recipes per category. Every supported
// category is present, with zero when unused.
func (c *Catalog) CategoryCounts() map[string]int {
	counts := make(map[string]int, len(SupportedCategories()))
	for _, name := range SupportedCategories() {
		counts[name] = 0
	}
	if c == nil {
		return counts
	}
	for _, r := range c.Recipes {
		counts[r.Category.String()]++
	}
	return counts
}

// CategorySummary pairs a category with the number of recipes in it.
type CategorySummary struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Summaries returns one entry per supported category, in SupportedCategories order.
func (c *Catalog) Summaries() []CategorySummary {
	counts := c.CategoryCounts()
	out := make([]CategorySummary, 0, len(counts))
	for _, name := range SupportedCategories() {
		out = append(out, CategorySummary{Name: name, Count: counts[name]})
	}
	return out
}

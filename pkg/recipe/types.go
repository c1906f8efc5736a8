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

const (
	// DefaultContributor is assigned until a Contributor line names someone.
	DefaultContributor = "unattributed"

	// DefaultImage is the placeholder image every converted recipe starts with.
	DefaultImage = "https://images.unsplash.com/photo-1495195129352-aec325a55b65?auto=format&fit=crop&q=80&w=800"
)

// Category is the catalog section a recipe is displayed under.
type Category string

// Category constants form the closed set accepted by the catalog display.
const (
	CategoryMain      Category = "Main"
	CategoryDessert   Category = "Dessert"
	CategorySide      Category = "Side"
	CategoryDipSauce  Category = "Dip/Sauce"
	CategoryBread     Category = "Bread"
	CategoryBreakfast Category = "Breakfast"
	CategorySnack     Category = "Snack"
)

// DefaultCategory is used when no keyword rule matches a title.
const DefaultCategory = CategoryMain

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is a member of the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMain, CategoryDessert, CategorySide, CategoryDipSauce,
		CategoryBread, CategoryBreakfast, CategorySnack:
		return true
	default:
		return false
	}
}

// SupportedCategories returns all categories in display order.
func SupportedCategories() []string {
	return []string{
		CategoryMain.String(),
		CategoryDessert.String(),
		CategorySide.String(),
		CategoryDipSauce.String(),
		CategoryBread.String(),
		CategoryBreakfast.String(),
		CategorySnack.String(),
	}
}

// Recipe is a single structured recipe record. Field order and tags define the
// interchange format consumed by the catalog display; every key is always present.
type Recipe struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Contributor  string   `json:"contributor" yaml:"contributor"`
	Category     Category `json:"category" yaml:"category"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	Image        string   `json:"image" yaml:"image"`
	Notes        string   `json:"notes" yaml:"notes"`
}

// IsValid reports whether the record is a genuine recipe. Headings without a
// single ingredient (family introductions, section titles) are not.
func (r *Recipe) IsValid() bool {
	return r != nil && len(r.Ingredients) > 0
}

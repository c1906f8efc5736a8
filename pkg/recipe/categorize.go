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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rule assigns Category to any title for which Match returns true.
// Match receives the lower-cased title.
type Rule struct {
	Name     string
	Category Category
	Match    func(title string) bool
}

// Rules is the ordered keyword table. The first matching rule wins, so order
// is the priority.
var Rules = []Rule{
	{
		Name:     "dessert",
		Category: CategoryDessert,
		Match:    containsAny("cookie", "bar", "cake", "brownie", "pie", "fudge", "dessert", "chow"),
	},
	{
		Name:     "soup",
		Category: CategoryMain,
		Match:    containsAny("soup", "stew", "chili"),
	},
	{
		Name:     "salad",
		Category: CategorySide,
		Match: func(t string) bool {
			return strings.Contains(t, "salad") && !strings.Contains(t, "chicken")
		},
	},
	{
		Name:     "dip",
		Category: CategoryDipSauce,
		Match:    containsAny("dip", "salsa"),
	},
	{
		Name:     "bread",
		Category: CategoryBread,
		Match:    containsAny("bread"),
	},
	{
		Name:     "breakfast",
		Category: CategoryBreakfast,
		Match:    containsAny("breakfast", "egg", "pancake"),
	},
	{
		Name:     "snack",
		Category: CategorySnack,
		Match:    containsAny("snack", "popcorn"),
	},
}

func containsAny(words ...string) func(string) bool {
	return func(t string) bool {
		for _, w := range words {
			if strings.Contains(t, w) {
				return true
			}
		}
		return false
	}
}

// CategoryFor returns the category of the first rule matching title,
// or DefaultCategory when none does.
func CategoryFor(title string) Category {
	// Casers hold state; one per call keeps concurrent parsers independent.
	t := cases.Lower(language.Und).String(title)
	for _, r := range Rules {
		if r.Match(t) {
			return r.Category
		}
	}
	return DefaultCategory
}

// Categorize drops every record without ingredients and assigns a category to
// each survivor. Output order is input order.
func Categorize(pending []*Recipe) (kept []*Recipe, dropped int) {
	kept = make([]*Recipe, 0, len(pending))
	for _, r := range pending {
		if !r.IsValid() {
			dropped++
			continue
		}
		r.Category = CategoryFor(r.Title)
		kept = append(kept, r)
	}
	return kept, dropped
}

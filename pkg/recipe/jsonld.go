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

import "strings"

const schemaOrgContext = "https://schema.org"

// SchemaOrgRecipe is the https://schema.org/Recipe structured data for one record.
type SchemaOrgRecipe struct {
	Context            string          `json:"@context" yaml:"@context"`
	Type               string          `json:"@type" yaml:"@type"`
	Name               string          `json:"name" yaml:"name"`
	Description        string          `json:"description" yaml:"description"`
	Author             SchemaOrgPerson `json:"author" yaml:"author"`
	RecipeCategory     string          `json:"recipeCategory" yaml:"recipeCategory"`
	Image              string          `json:"image,omitempty" yaml:"image,omitempty"`
	RecipeIngredient   []string        `json:"recipeIngredient,omitempty" yaml:"recipeIngredient,omitempty"`
	RecipeInstructions []HowToStep     `json:"recipeInstructions,omitempty" yaml:"recipeInstructions,omitempty"`
}

// SchemaOrgPerson is a schema.org Person.
type SchemaOrgPerson struct {
	Type string `json:"@type" yaml:"@type"`
	Name string `json:"name" yaml:"name"`
}

// HowToStep is a single numbered instruction.
type HowToStep struct {
	Type     string `json:"@type" yaml:"@type"`
	Position int    `json:"position" yaml:"position"`
	Text     string `json:"text" yaml:"text"`
}

// ToSchemaOrg converts r into schema.org structured data. Site-relative images
// are resolved against baseURL when one is given.
func ToSchemaOrg(r *Recipe, baseURL string) SchemaOrgRecipe {
	description := r.Notes
	if strings.TrimSpace(description) == "" {
		description = r.Title + " from " + r.Contributor
	}

	image := r.Image
	if strings.HasPrefix(image, "/") && baseURL != "" {
		image = strings.TrimSuffix(baseURL, "/") + image
	}

	out := SchemaOrgRecipe{
		Context:        schemaOrgContext,
		Type:           "Recipe",
		Name:           r.Title,
		Description:    strings.TrimSpace(description),
		Author:         SchemaOrgPerson{Type: "Person", Name: r.Contributor},
		RecipeCategory: r.Category.String(),
		Image:          image,
	}
	if len(r.Ingredients) > 0 {
		out.RecipeIngredient = r.Ingredients
	}
	for i, text := range r.Instructions {
		out.RecipeInstructions = append(out.RecipeInstructions, HowToStep{
			Type:     "HowToStep",
			Position: i + 1,
			Text:     text,
		})
	}
	return out
}

// CatalogToSchemaOrg converts every recipe of c, in order.
func CatalogToSchemaOrg(c *Catalog, baseURL string) []SchemaOrgRecipe {
	out := make([]SchemaOrgRecipe, 0, c.Count())
	if c == nil {
		return out
	}
	for _, r := range c.Recipes {
		out = append(out, ToSchemaOrg(r, baseURL))
	}
	return out
}

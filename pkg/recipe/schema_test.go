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
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schafer-family/cookbook/pkg/errors"
)

func validRecipe() *Recipe {
	return &Recipe{
		ID:           "id-1",
		Title:        "Apple Pie",
		Contributor:  DefaultContributor,
		Category:     CategoryDessert,
		Ingredients:  []string{"apples"},
		Instructions: []string{},
		Image:        DefaultImage,
	}
}

func TestValidateCatalog_ParsedOutput(t *testing.T) {
	cat := parseString(t, appleDip+"\n### Chicken Salad\n**Ingredients:**\n- chicken\n")
	require.NoError(t, ValidateCatalog(cat))
	require.NoError(t, ValidateCatalog(NewCatalog(nil, 0)))
	require.NoError(t, ValidateCatalog(nil))
}

func TestValidateRecipes_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Recipe)
		loc    string
	}{
		{"unknown category", func(r *Recipe) { r.Category = "Appetizer" }, "/0/category"},
		{"no ingredients", func(r *Recipe) { r.Ingredients = []string{} }, "/0/ingredients"},
		{"nil ingredients", func(r *Recipe) { r.Ingredients = nil }, "/0/ingredients"},
		{"nil instructions", func(r *Recipe) { r.Instructions = nil }, "/0/instructions"},
		{"empty title", func(r *Recipe) { r.Title = "" }, "/0/title"},
		{"empty id", func(r *Recipe) { r.ID = "" }, "/0/id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(r)

			err := ValidateRecipes([]*Recipe{r})
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeContractViolation, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.loc)

			var se *errors.StructuredError
			require.True(t, stderrors.As(err, &se))
			issues, ok := se.Context["issues"].([]ContractIssue)
			require.True(t, ok)
			assert.NotEmpty(t, issues)
		})
	}
}

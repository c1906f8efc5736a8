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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlaceholderImage(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"default image", DefaultImage, true},
		{"pollinations", "https://image.pollinations.ai/prompt/apple%20pie", true},
		{"pollinations upper", "https://IMAGE.POLLINATIONS.AI/prompt/x", true},
		{"unsplash category", "https://source.unsplash.com/800x600/?Dessert", true},
		{"unsplash dip sauce", "https://source.unsplash.com/?Dip/Sauce", true},
		{"unsplash photo", "https://images.unsplash.com/photo-123?w=800", false},
		{"real image", "/recipe-images/apple-pie.jpg", false},
		{"real image on host", "https://image.pollinations.ai/recipe-images/x.jpg", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlaceholderImage(tt.url))
		})
	}
}

func TestPlaceholderRecipes(t *testing.T) {
	recipes := []*Recipe{
		{ID: "1", Image: DefaultImage},
		{ID: "2", Image: "/recipe-images/two.jpg"},
		nil,
		{ID: "3", Image: "https://image.pollinations.ai/prompt/three"},
	}

	got := PlaceholderRecipes(recipes)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	}
	assert.NotNil(t, PlaceholderRecipes(nil))
}

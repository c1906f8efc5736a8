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

// realImagePath marks images that have already been replaced with photos.
const realImagePath = "/recipe-images/"

var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)image\.pollinations\.ai`),
	regexp.MustCompile(`(?i)unsplash.*(Breakfast|Main|Dessert|Side|Appetizer|Bread|Dip/Sauce|Snack)`),
}

// IsPlaceholderImage reports whether url is a generated or stock placeholder
// rather than a real photo of the dish. The default converter image counts as
// a placeholder.
func IsPlaceholderImage(url string) bool {
	if strings.Contains(url, realImagePath) {
		return false
	}
	if url == DefaultImage {
		return true
	}
	for _, p := range placeholderPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// PlaceholderRecipes returns the recipes still showing a placeholder image,
// in input order.
func PlaceholderRecipes(recipes []*Recipe) []*Recipe {
	out := []*Recipe{}
	for _, r := range recipes {
		if r != nil && IsPlaceholderImage(r.Image) {
			out = append(out, r)
		}
	}
	return out
}

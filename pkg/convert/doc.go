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

// Package convert runs the cookbook conversion pipeline: read every input,
// parse the documents concurrently, merge them in input order, check the
// result against the output contract and write it to one destination.
//
//	res, err := convert.Run(ctx, convert.Options{
//	    Inputs: []string{"cookbook.md"},
//	    Output: "public/recipes.json",
//	})
//
// Nothing is written unless every step before the write succeeds.
package convert

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
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/schafer-family/cookbook/pkg/errors"
)

const schemaResource = "recipes.schema.json"

// SchemaJSON is the interchange contract consumed by the catalog display.
//
//go:embed schema/recipes.schema.json
var SchemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	errSchema      error
)

func contractSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaResource, bytes.NewReader(SchemaJSON)); err != nil {
			errSchema = err
			return
		}
		compiledSchema, errSchema = compiler.Compile(schemaResource)
	})
	return compiledSchema, errSchema
}

// ContractIssue is one leaf failure reported by the contract schema.
type ContractIssue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// ValidateRecipes checks the records exactly as they will be encoded. Any
// failure is ErrCodeContractViolation carrying the individual issues.
func ValidateRecipes(recipes []*Recipe) error {
	schema, err := contractSchema()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to compile recipe contract", err)
	}

	if recipes == nil {
		recipes = []*Recipe{}
	}
	encoded, err := json.Marshal(recipes)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to encode recipes", err)
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to decode recipes", err)
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !stderrors.As(err, &ve) {
			return errors.Wrap(errors.ErrCodeContractViolation, "recipe contract validation failed", err)
		}
		issues := collectIssues(ve)
		return errors.WrapWithContext(errors.ErrCodeContractViolation,
			fmt.Sprintf("recipes violate the output contract: %s", summarize(issues)), err,
			map[string]any{"issues": issues})
	}
	return nil
}

// ValidateCatalog validates the recipes of c.
func ValidateCatalog(c *Catalog) error {
	if c == nil {
		return ValidateRecipes(nil)
	}
	return ValidateRecipes(c.Recipes)
}

func collectIssues(ve *jsonschema.ValidationError) []ContractIssue {
	issues := []ContractIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			loc := strings.TrimSpace(node.InstanceLocation)
			if loc == "" {
				loc = "/"
			}
			issues = append(issues, ContractIssue{Location: loc, Message: node.Message})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(ve)
	return issues
}

func summarize(issues []ContractIssue) string {
	parts := make([]string, 0, len(issues))
	for _, is := range issues {
		parts = append(parts, is.Location+": "+is.Message)
	}
	return strings.Join(parts, "; ")
}

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

// Package cli implements the cookbook command-line interface.
//
// # Commands
//
// convert - Convert cookbook markdown into structured recipes:
//
//	cookbook convert --input cookbook.md [--input more.md] [--output recipes.json] [--format json]
//
// Parses every input, drops recipes without ingredients, assigns each remaining
// recipe a category and writes the combined list once. Prints "Converted N recipes"
// to stderr on success.
//
// images - List recipes that still use a placeholder image:
//
//	cookbook images --input recipes.json [--format table]
//
// categories - List the recipe categories, optionally with counts:
//
//	cookbook categories [--input cookbook.md] [--format table]
//
// serve - Serve the recipe catalog over HTTP:
//
//	cookbook serve --input cookbook.md [--port 8080] [--watch]
//
// # Inputs and Outputs
//
// Inputs are file paths, "-" for stdin, HTTP/HTTPS URLs, or ConfigMap URIs
// (cm://namespace/name, document under the cookbook.md key). Outputs are stdout
// (default or "-"), file paths (replaced atomically), ConfigMap URIs, or OCI
// references (oci://registry/repository:tag).
//
// # Output Formats
//
//	json    Recipe array, 2-space indent (default)
//	yaml    Same records as YAML
//	table   One row per recipe for terminal viewing
//	jsonld  schema.org Recipe objects
//
// # Configuration
//
// Values resolve in this order: flag, environment variable, configuration file
// (--config or COOKBOOK_CONFIG), built-in default.
//
//	LOG_LEVEL             Logging verbosity (debug, info, warn, error)
//	COOKBOOK_CONFIG       Configuration file path
//	COOKBOOK_INPUT        Comma-separated inputs
//	COOKBOOK_OUTPUT       Output destination
//	COOKBOOK_FORMAT       Output format
//	COOKBOOK_CONTRIBUTOR  Default contributor
//	COOKBOOK_IMAGE        Default image URL
//	COOKBOOK_PORT         Catalog API port
//	COOKBOOK_WATCH        Reload on input changes
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, read, parse or write failure)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/schafer-family/cookbook/pkg/cli.version=1.0.0'"
package cli

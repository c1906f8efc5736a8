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

// Package defaults provides centralized timeout constants for the cookbook tools.
//
// Timeouts are organized by component:
//
//   - Conversion: the end-to-end convert command
//   - Server: HTTP server configuration and catalog reloads
//   - HTTP client: fetching remote cookbook documents
//   - Publishing: ConfigMap reads/writes and OCI pushes
//
// Import and use constants directly:
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ConvertTimeout)
//	defer cancel()
package defaults

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

// Package api serves a parsed cookbook as a read-only HTTP catalog.
//
// # Usage
//
//	err := api.Serve(ctx, api.Options{
//	    Inputs: []string{"cookbook.md"},
//	    Watch:  true,
//	})
//
// # Architecture
//
// The API layer is responsible for:
//   - Loading the catalog through pkg/convert and holding it in a Store
//   - Reloading on input changes when watching (fsnotify, debounced)
//   - Setting up the catalog route handlers
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/recipes         - all recipes, optionally ?category=Dessert
//   - GET /v1/recipes/{id}    - one recipe
//   - GET /v1/categories      - every category with its recipe count
//
// Each accepts ?format=json|yaml|table|jsonld (default json).
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check, 503 until the catalog is loaded
//   - GET /metrics - Prometheus metrics
//
// Record ids are generated per load, so they change when the catalog reloads.
package api

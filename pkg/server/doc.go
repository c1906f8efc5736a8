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

// Package server is the HTTP foundation of the cookbook catalog API.
//
// # Architecture
//
// The server wraps net/http with the pieces every endpoint shares:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking via the X-Request-Id header
//   - Panic recovery returning a JSON ErrorResponse
//   - Prometheus RED metrics per route pattern
//   - Graceful shutdown on SIGINT and SIGTERM
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cookbookd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/recipes": h.HandleRecipes,
//	    }),
//	    server.WithReadinessCheck(store.Ready),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Handler patterns are ServeMux paths without a method; handlers check the
// method themselves so that rejections share the JSON error shape.
//
// # System Endpoints
//
// GET /health - liveness, always 200 while the process serves requests.
//
// GET /ready - 200 once the server is running and the readiness check passes,
// 503 with a reason otherwise (including during shutdown).
//
// GET /metrics - Prometheus exposition.
//
// # Error Responses
//
// Errors are JSON:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "Recipe not found",
//	  "details": {"id": "..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
//
// Status codes come from HTTPStatusFromCode.
//
// # Configuration
//
// PORT and SHUTDOWN_TIMEOUT_SECONDS override the defaults from NewConfig.
package server

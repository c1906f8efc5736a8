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

package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/schafer-family/cookbook/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code errors.ErrorCode
		want int
	}{
		{"invalid request", errors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"not found", errors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", errors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"rate limit", errors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable", errors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", errors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{"internal", errors.ErrCodeInternal, http.StatusInternalServerError},
		{"read failed", errors.ErrCodeReadFailed, http.StatusInternalServerError},
		{"unknown defaults to internal", errors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		name string
		code errors.ErrorCode
		want bool
	}{
		{"invalid request", errors.ErrCodeInvalidRequest, false},
		{"not found", errors.ErrCodeNotFound, false},
		{"timeout", errors.ErrCodeTimeout, true},
		{"unavailable", errors.ErrCodeUnavailable, true},
		{"rate limit", errors.ErrCodeRateLimitExceeded, true},
		{"internal", errors.ErrCodeInternal, true},
		{"unknown defaults false", errors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	if got := mergeDetails(nil, map[string]any{}); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}

	base := map[string]any{"a": 1, "shared": "old"}
	got := mergeDetails(base, map[string]any{"b": 2, "shared": "new"})
	if got["a"] != 1 || got["b"] != 2 || got["shared"] != "new" {
		t.Fatalf("unexpected merge %#v", got)
	}
	if base["shared"] != "old" {
		t.Fatal("base map was modified")
	}
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, errors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Code != string(errors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", errors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("expected requestId %q, got %q", "req-123", resp.RequestID)
	}
	if resp.Retryable {
		t.Fatal("expected retryable=false")
	}
	if resp.Details["k"] != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteErrorFromErr_StructuredErrorMapsStatusAndDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	cause := stderrors.New("disk gone")
	err := errors.WrapWithContext(errors.ErrCodeUnavailable, "catalog unavailable", cause, map[string]any{"input": "cookbook.md"})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var resp ErrorResponse
	if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("failed to unmarshal response: %v", uerr)
	}
	if resp.Message != "catalog unavailable" || !resp.Retryable {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Details["input"] != "cookbook.md" || resp.Details["extra"] != "yes" || resp.Details["error"] != "disk gone" {
		t.Fatalf("unexpected details %#v", resp.Details)
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, req, stderrors.New("boom"), "fallback", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Code != string(errors.ErrCodeInternal) || resp.Message != "fallback" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Details["error"] != "boom" {
		t.Fatalf("expected details error=boom, got %#v", resp.Details)
	}
}

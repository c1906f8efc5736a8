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

package serializer

import (
	"bytes"
	"testing"

	"github.com/schafer-family/cookbook/pkg/errors"
)

func TestNewDestination(t *testing.T) {
	stdout := &bytes.Buffer{}
	tests := []struct {
		name    string
		uri     string
		check   func(t *testing.T, s Serializer)
		wantErr errors.ErrorCode
	}{
		{
			name: "empty is stdout",
			uri:  "",
			check: func(t *testing.T, s Serializer) {
				w, ok := s.(*Writer)
				if !ok || w.output != stdout {
					t.Errorf("expected stdout writer, got %T", s)
				}
			},
		},
		{
			name: "dash is stdout",
			uri:  "-",
			check: func(t *testing.T, s Serializer) {
				if _, ok := s.(*Writer); !ok {
					t.Errorf("expected *Writer, got %T", s)
				}
			},
		},
		{
			name: "configmap",
			uri:  "cm://kitchen/recipes",
			check: func(t *testing.T, s Serializer) {
				w, ok := s.(*ConfigMapWriter)
				if !ok {
					t.Fatalf("expected *ConfigMapWriter, got %T", s)
				}
				if w.namespace != "kitchen" || w.name != "recipes" {
					t.Errorf("got %s/%s", w.namespace, w.name)
				}
			},
		},
		{
			name:    "malformed configmap",
			uri:     "cm://kitchen",
			wantErr: errors.ErrCodeInvalidRequest,
		},
		{
			name: "oci",
			uri:  "oci://ghcr.io/schafer/cookbook:v1",
			check: func(t *testing.T, s Serializer) {
				w, ok := s.(*OCIWriter)
				if !ok {
					t.Fatalf("expected *OCIWriter, got %T", s)
				}
				if w.ref.Tag != "v1" {
					t.Errorf("tag = %q", w.ref.Tag)
				}
			},
		},
		{
			name: "file",
			uri:  "out/recipes.json",
			check: func(t *testing.T, s Serializer) {
				w, ok := s.(*FileWriter)
				if !ok || w.Path() != "out/recipes.json" {
					t.Errorf("expected file writer for out/recipes.json, got %T", s)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newDestination(FormatJSON, tt.uri, stdout)
			if tt.wantErr != "" {
				if !errors.IsCode(err, tt.wantErr) {
					t.Errorf("expected %s, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("newDestination() error = %v", err)
			}
			tt.check(t, s)
		})
	}
}

func TestNewDestination_UnknownFormat(t *testing.T) {
	_, err := NewDestination(Format("xml"), "-")
	if !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
}

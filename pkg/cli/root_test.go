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

package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/schafer-family/cookbook/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"plain error", fmt.Errorf("boom"), exitCodeError},
		{"invalid request", errors.New(errors.ErrCodeInvalidRequest, "bad flag"), exitCodeError},
		{"read failure", errors.New(errors.ErrCodeReadFailed, "missing input"), exitCodeError},
		{"canceled", fmt.Errorf("run: %w", context.Canceled), exitCodeCanceled},
		{"deadline", context.DeadlineExceeded, exitCodeCanceled},
		{"timeout code", errors.Wrap(errors.ErrCodeTimeout, "parse canceled", context.Canceled), exitCodeCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRootCmd_Commands(t *testing.T) {
	cmd := newRootCmd()
	want := map[string]bool{"convert": false, "images": false, "categories": false, "serve": false}
	for _, c := range cmd.Commands {
		if _, ok := want[c.Name]; ok {
			want[c.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, versionDefault) {
		t.Errorf("version output %q does not contain %q", stdout, versionDefault)
	}
}

func TestConvertCmd_UnknownFlag(t *testing.T) {
	_, _, err := runCLI(t, "convert", "--no-such-flag")
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

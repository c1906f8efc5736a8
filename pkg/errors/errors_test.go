package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "recipe not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "recipe not found" {
		t.Errorf("expected message 'recipe not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeWriteFailed, "failed to write recipes", cause)

	if err.Code != ErrCodeWriteFailed {
		t.Errorf("expected code %s, got %s", ErrCodeWriteFailed, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("no such file")
	ctx := map[string]any{
		"source": "cookbook.md",
	}

	err := WrapWithContext(ErrCodeReadFailed, "failed to read document", cause, ctx)

	if err.Code != ErrCodeReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeReadFailed, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["source"] != "cookbook.md" {
		t.Errorf("expected source to be cookbook.md")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeReadFailed, "failed", errors.New("root cause")),
			expected: "[READ_FAILED] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: errors.New("boom"), want: ""},
		{name: "structured", err: New(ErrCodeWriteFailed, "x"), want: ErrCodeWriteFailed},
		{name: "fmt wrapped", err: fmt.Errorf("outer: %w", New(ErrCodeReadFailed, "x")), want: ErrCodeReadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeTimeout, "deadline")
	outer := Wrap(ErrCodeReadFailed, "download failed", inner)

	if !IsCode(outer, ErrCodeReadFailed) {
		t.Error("expected outer code to match")
	}
	if !IsCode(outer, ErrCodeTimeout) {
		t.Error("expected nested code to match")
	}
	if IsCode(outer, ErrCodeWriteFailed) {
		t.Error("unexpected match for WRITE_FAILED")
	}
	if IsCode(nil, ErrCodeInternal) {
		t.Error("nil error should not match")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}
}

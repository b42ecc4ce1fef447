package vapi

import (
	"errors"
	"fmt"
	"testing"
)

func TestAnnotationErrorMessage(t *testing.T) {
	err := newInvalidOptionsError("vapi.Provide", []string{"cap", "zap"})

	want := `vapi.Provide: invalid argument: unrecognized options "cap", "zap"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAnnotationErrorUnwrap(t *testing.T) {
	err := newInvalidOptionsError("vapi.Require", []string{"bogus"})

	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("expected errors.Is to reach ErrInvalidArgument")
	}

	var annErr *AnnotationError
	if !errors.As(err, &annErr) {
		t.Fatal("expected errors.As to find *AnnotationError")
	}
	if annErr.Op != "vapi.Require" {
		t.Errorf("Op = %q, want vapi.Require", annErr.Op)
	}
	if len(annErr.Options) != 1 || annErr.Options[0] != "bogus" {
		t.Errorf("Options = %v, want [bogus]", annErr.Options)
	}
}

func TestIsInvalidArgument(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "sentinel itself",
			err:      ErrInvalidArgument,
			expected: true,
		},
		{
			name:     "wrapped sentinel",
			err:      fmt.Errorf("annotation failed: %w", ErrInvalidArgument),
			expected: true,
		},
		{
			name:     "structured annotation error",
			err:      newInvalidOptionsError("vapi.Provide", []string{"cap"}),
			expected: true,
		},
		{
			name:     "unrelated error",
			err:      errors.New("boom"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidArgument(tt.err); got != tt.expected {
				t.Errorf("IsInvalidArgument(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

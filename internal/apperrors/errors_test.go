// Package apperrors tests verify the custom error types, their Error()
// messages and errors.Is / errors.As matching through fmt.Errorf wrapping.
package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidParameterError_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *InvalidParameterError
		expected string
	}{
		{
			name:     "with value",
			err:      NewInvalidParameterError("limit", "abc", "must be a non-negative integer"),
			expected: `invalid parameter limit="abc": must be a non-negative integer`,
		},
		{
			name:     "without value",
			err:      NewInvalidParameterError("title", "", "required"),
			expected: "invalid parameter title: required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInvalidParameterError_Wrapped(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("handler: %w", NewInvalidParameterError("limit", "-1", "must be a non-negative integer"))

	if !errors.Is(err, &InvalidParameterError{}) {
		t.Error("expected errors.Is to match wrapped *InvalidParameterError")
	}

	var target *InvalidParameterError
	if !errors.As(err, &target) {
		t.Fatal("expected errors.As to extract *InvalidParameterError")
	}
	if target.Name != "limit" || target.Value != "-1" {
		t.Errorf("unexpected fields: %+v", target)
	}

	if errors.Is(err, &UnknownFilterError{}) {
		t.Error("expected errors.Is not to match *UnknownFilterError")
	}
}

func TestUnknownFilterError(t *testing.T) {
	t.Parallel()
	err := &UnknownFilterError{Entity: "character", Filter: "type"}

	if got, want := err.Error(), `character has no filter "type"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(fmt.Errorf("wrap: %w", err), &UnknownFilterError{}) {
		t.Error("expected wrapped error to match")
	}
}

func TestErrBlankTerm(t *testing.T) {
	t.Parallel()
	if !errors.Is(fmt.Errorf("search anime: %w", ErrBlankTerm), ErrBlankTerm) {
		t.Error("expected wrapped ErrBlankTerm to match")
	}
}

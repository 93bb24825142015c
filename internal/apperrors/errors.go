package apperrors

import (
	"errors"
	"fmt"
)

// ErrBlankTerm is returned when a search is attempted with an empty or whitespace-only term.
var ErrBlankTerm = errors.New("search term must not be blank")

// InvalidParameterError represents a request parameter that failed validation.
type InvalidParameterError struct {
	Name   string
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid parameter %s: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid parameter %s=%q: %s", e.Name, e.Value, e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *InvalidParameterError) Is(target error) bool {
	_, ok := target.(*InvalidParameterError)
	return ok
}

// NewInvalidParameterError creates a new InvalidParameterError.
func NewInvalidParameterError(name, value, reason string) *InvalidParameterError {
	return &InvalidParameterError{Name: name, Value: value, Reason: reason}
}

// UnknownFilterError is returned when a listing filter is not declared on the entity schema.
type UnknownFilterError struct {
	Entity string
	Filter string
}

// Error implements the error interface.
func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("%s has no filter %q", e.Entity, e.Filter)
}

// Is allows for error checking with errors.Is().
func (e *UnknownFilterError) Is(target error) bool {
	_, ok := target.(*UnknownFilterError)
	return ok
}

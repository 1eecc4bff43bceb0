package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single failure class of the engine. Every rejected
// input wraps it so callers can branch with errors.Is.
var ErrInvalidInput = errors.New("invalid input values")

// InputError names the offending field of a rejected calculation.
type InputError struct {
	Field  string
	Reason string
}

// NewInputError creates an InputError for field.
func NewInputError(field, reason string) *InputError {
	return &InputError{Field: field, Reason: reason}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

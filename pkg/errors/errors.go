package errors

import (
	"errors"
	"fmt"
)

// Standard error types
var (
	ErrTransport     = errors.New("transport error")
	ErrDecode        = errors.New("decode error")
	ErrNotFound      = errors.New("not found")
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
)

// WrapError wraps an error with a standard error type.
// Both errType and err stay reachable through errors.Is / errors.As.
func WrapError(err error, errType error, message string) error {
	if err == nil {
		return fmt.Errorf("%w: %s", errType, message)
	}
	return fmt.Errorf("%w: %s: %w", errType, message, err)
}

// Is provides a convenience wrapper around errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As provides a convenience wrapper around errors.As
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap provides a convenience wrapper around errors.Unwrap
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

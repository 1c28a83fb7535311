// Package common defines shared constants and sentinel errors used across
// client and server layers of SafeWalk. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Input errors. ErrValidation covers missing or malformed user input,
	// ErrConfiguration covers programmer errors such as unknown flag names.
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")

	// Alert errors.
	ErrLocationSharingDisabled = errors.New("location sharing is disabled")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError reports a required field that is missing or holds a value
// outside its allowed set.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConfigurationError reports an unknown settings flag.
type ConfigurationError struct {
	Flag string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: unknown flag %q", ErrConfiguration, e.Flag)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

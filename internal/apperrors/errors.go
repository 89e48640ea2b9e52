// Package apperrors defines the error taxonomy shared by services and handlers.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error classes. Concrete errors wrap one of these so callers can match them with errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication failed")
	ErrAuthorization  = errors.New("access denied")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
)

// ErrCacheMiss is returned by caches for absent keys. It is never shown to clients.
var ErrCacheMiss = errors.New("cache miss")

// ErrInvalidID is returned when a path identifier is not a well-formed UUID.
var ErrInvalidID = &ValidationError{Violations: []string{"invalid id"}}

// ValidationError carries every field violation found in a single input.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Violations, "; ")
}

// Is reports ErrValidation as the class of every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validator accumulates violations and turns them into a single error.
type Validator struct {
	violations []string
}

// Check records msg when ok is false.
func (v *Validator) Check(ok bool, msg string) {
	if !ok {
		v.violations = append(v.violations, msg)
	}
}

// CheckLength records a violation when value has more than limit characters.
func (v *Validator) CheckLength(value string, limit int, field string) {
	v.Check(utf8.RuneCountInString(value) <= limit, fmt.Sprintf("%s must be at most %d characters", field, limit))
}

// Err returns nil when no violation was recorded.
func (v *Validator) Err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.violations}
}

// Package errors provides the error handling primitives used across the
// codebase. It is conventionally imported as ierr.
//
// Errors are built fluently and marked with a sentinel that callers can
// test with errors.Is:
//
//	return ierr.NewError("vat rate out of range").
//		WithHint("vat_rate must be between 0 and 1").
//		WithReportableDetails(map[string]any{"field": "vat_rate"}).
//		Mark(ierr.ErrValidation)
package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors used with Mark. Callers match on these with errors.Is.
var (
	ErrValidation       = errors.New("validation_error")
	ErrNotFound         = errors.New("not_found")
	ErrAlreadyExists    = errors.New("already_exists")
	ErrPermissionDenied = errors.New("permission_denied")
	ErrInternal         = errors.New("internal_error")
)

// IsValidation reports whether err is marked as a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is marked as a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is marked as an already exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

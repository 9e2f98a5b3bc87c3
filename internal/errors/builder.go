package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InternalError is the concrete error type produced by this package. It
// carries a human message, an optional hint for API consumers, optional
// reportable details (e.g. the offending field of a validation failure),
// a sentinel mark and an optional wrapped cause.
type InternalError struct {
	Message           string
	Hint              string
	ReportableDetails map[string]any

	mark  error
	cause error
}

// NewError starts building an error with the given message.
func NewError(message string) *InternalError {
	return &InternalError{Message: message}
}

// NewErrorf starts building an error with a formatted message.
func NewErrorf(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

// WithError starts building an error that wraps an existing cause.
func WithError(err error) *InternalError {
	return &InternalError{
		Message: err.Error(),
		cause:   errors.WithStack(err),
	}
}

// WithHint attaches a consumer-facing hint.
func (e *InternalError) WithHint(hint string) *InternalError {
	e.Hint = hint
	return e
}

// WithHintf attaches a formatted consumer-facing hint.
func (e *InternalError) WithHintf(format string, args ...any) *InternalError {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// WithReportableDetails attaches structured details safe to surface to
// callers, such as the name of the field that failed validation.
func (e *InternalError) WithReportableDetails(details map[string]any) *InternalError {
	e.ReportableDetails = details
	return e
}

// Mark tags the error with a sentinel and finalizes the chain.
func (e *InternalError) Mark(mark error) error {
	e.mark = mark
	return e
}

func (e *InternalError) Error() string {
	if e.cause != nil && e.cause.Error() != e.Message {
		return fmt.Sprintf("%s: %s", e.Message, e.cause.Error())
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to the errors package.
func (e *InternalError) Unwrap() error {
	return e.cause
}

// Is matches against the sentinel mark so errors.Is(err, ierr.ErrValidation)
// works regardless of wrapping depth.
func (e *InternalError) Is(target error) bool {
	return e.mark != nil && errors.Is(e.mark, target)
}

// Field returns a reportable detail by key, or nil when absent.
func (e *InternalError) Field(key string) any {
	if e.ReportableDetails == nil {
		return nil
	}
	return e.ReportableDetails[key]
}

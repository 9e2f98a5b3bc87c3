package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_MarkSupportsErrorsIs(t *testing.T) {
	err := NewError("vat rate out of range").
		WithHint("vatRate is a fraction").
		WithReportableDetails(map[string]any{"field": "vatRate"}).
		Mark(ErrValidation)

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsValidation(err))
}

func TestBuilder_WithErrorKeepsCause(t *testing.T) {
	cause := errors.New("parse failure")
	err := WithError(cause).
		WithHintf("reading at index %d is malformed", 3).
		Mark(ErrValidation)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestBuilder_ReportableDetails(t *testing.T) {
	err := NewErrorf("rate %s must be non negative", "fuelLevyRatePerKwh").
		WithReportableDetails(map[string]any{"field": "fuelLevyRatePerKwh"}).
		Mark(ErrValidation)

	var ie *InternalError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "fuelLevyRatePerKwh", ie.Field("field"))
	assert.Nil(t, ie.Field("missing"))
}

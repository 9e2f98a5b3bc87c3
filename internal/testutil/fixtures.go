package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stimasense/stimasense/internal/domain/meter"
	"github.com/stimasense/stimasense/internal/types"
)

// NewTestReading builds a valid reading fixture.
func NewTestReading(meterID string, ts time.Time, kwh, cost float64) *meter.Reading {
	return &meter.Reading{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_READING),
		MeterID:     meterID,
		Timestamp:   ts,
		KwhConsumed: decimal.NewFromFloat(kwh),
		TotalCost:   decimal.NewFromFloat(cost),
	}
}

// NewTestMeterID generates a unique meter identifier for fixtures.
func NewTestMeterID() string {
	return types.GenerateUUIDWithPrefix(types.UUID_PREFIX_METER)
}

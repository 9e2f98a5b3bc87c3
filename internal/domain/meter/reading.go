// Package meter holds the meter-reading model consumed by the analytics
// core. Readings are produced by the ingestion pipeline and are immutable
// once recorded.
package meter

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/stimasense/stimasense/internal/errors"
)

// Reading is one timestamped consumption observation for a meter.
//
// The JSON field names are a stable public schema; dashboard and
// notification collaborators bind to them by name.
type Reading struct {
	ID          string          `json:"id"`
	MeterID     string          `json:"meterId"`
	Timestamp   time.Time       `json:"timestamp"`
	KwhConsumed decimal.Decimal `json:"kwhConsumed"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

// Validate rejects malformed readings with an error naming the offending
// field. Values are never silently clamped.
func (r *Reading) Validate() error {
	if r.MeterID == "" {
		return ierr.NewError("meter ID is required").
			WithReportableDetails(map[string]any{"field": "meterId"}).
			Mark(ierr.ErrValidation)
	}
	if r.Timestamp.IsZero() {
		return ierr.NewError("reading timestamp is required").
			WithReportableDetails(map[string]any{"field": "timestamp"}).
			Mark(ierr.ErrValidation)
	}
	if r.KwhConsumed.IsNegative() {
		return ierr.NewErrorf("kwh consumed must be non negative, got %s", r.KwhConsumed).
			WithReportableDetails(map[string]any{"field": "kwhConsumed"}).
			Mark(ierr.ErrValidation)
	}
	if r.TotalCost.IsNegative() {
		return ierr.NewErrorf("total cost must be non negative, got %s", r.TotalCost).
			WithReportableDetails(map[string]any{"field": "totalCost"}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Package tariff converts metered consumption into an itemized,
// regulator-compliant electricity bill.
package tariff

import (
	"github.com/shopspring/decimal"

	ierr "github.com/stimasense/stimasense/internal/errors"
)

// RateSchedule is the regulator/provider tariff configuration: the base
// energy rate, the per-kWh levies and the VAT fraction. Rates come from
// configuration, never from code.
//
// The JSON field names are a stable public schema; collaborators bind to
// them by name.
type RateSchedule struct {
	EnergyRatePerKwh              decimal.Decimal `json:"energyRatePerKwh"`
	FuelLevyRatePerKwh            decimal.Decimal `json:"fuelLevyRatePerKwh"`
	ForexLevyRatePerKwh           decimal.Decimal `json:"forexLevyRatePerKwh"`
	InflationAdjustmentRatePerKwh decimal.Decimal `json:"inflationAdjustmentRatePerKwh"`
	EpraLevyRatePerKwh            decimal.Decimal `json:"epraLevyRatePerKwh"`
	WraLevyRatePerKwh             decimal.Decimal `json:"wraLevyRatePerKwh"`
	RepLevyRatePerKwh             decimal.Decimal `json:"repLevyRatePerKwh"`
	VatRate                       decimal.Decimal `json:"vatRate"`
}

// Validate rejects negative rates and an out-of-range VAT fraction with an
// error naming the offending field.
func (s RateSchedule) Validate() error {
	rates := []struct {
		field string
		value decimal.Decimal
	}{
		{"energyRatePerKwh", s.EnergyRatePerKwh},
		{"fuelLevyRatePerKwh", s.FuelLevyRatePerKwh},
		{"forexLevyRatePerKwh", s.ForexLevyRatePerKwh},
		{"inflationAdjustmentRatePerKwh", s.InflationAdjustmentRatePerKwh},
		{"epraLevyRatePerKwh", s.EpraLevyRatePerKwh},
		{"wraLevyRatePerKwh", s.WraLevyRatePerKwh},
		{"repLevyRatePerKwh", s.RepLevyRatePerKwh},
	}
	for _, r := range rates {
		if r.value.IsNegative() {
			return ierr.NewErrorf("rate %s must be non negative, got %s", r.field, r.value).
				WithReportableDetails(map[string]any{"field": r.field}).
				Mark(ierr.ErrValidation)
		}
	}

	if s.VatRate.IsNegative() || s.VatRate.GreaterThan(decimal.NewFromInt(1)) {
		return ierr.NewErrorf("vat rate must be between 0 and 1, got %s", s.VatRate).
			WithHint("vatRate is a fraction, e.g. 0.16 for 16%").
			WithReportableDetails(map[string]any{"field": "vatRate"}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

package config

import (
	"github.com/shopspring/decimal"

	"github.com/stimasense/stimasense/internal/domain/tariff"
)

// RateSchedule materializes the configured tariff rates as the decimal
// schedule the billing calculator consumes.
func (t TariffConfig) RateSchedule() tariff.RateSchedule {
	return tariff.RateSchedule{
		EnergyRatePerKwh:              decimal.NewFromFloat(t.EnergyRatePerKwh),
		FuelLevyRatePerKwh:            decimal.NewFromFloat(t.FuelLevyRatePerKwh),
		ForexLevyRatePerKwh:           decimal.NewFromFloat(t.ForexLevyRatePerKwh),
		InflationAdjustmentRatePerKwh: decimal.NewFromFloat(t.InflationAdjustmentPerKwh),
		EpraLevyRatePerKwh:            decimal.NewFromFloat(t.EpraLevyRatePerKwh),
		WraLevyRatePerKwh:             decimal.NewFromFloat(t.WraLevyRatePerKwh),
		RepLevyRatePerKwh:             decimal.NewFromFloat(t.RepLevyRatePerKwh),
		VatRate:                       decimal.NewFromFloat(t.VatRate),
	}
}

package tariff

import (
	"github.com/shopspring/decimal"

	"github.com/stimasense/stimasense/internal/types"
)

// BillBreakdown itemizes one billing computation. All amounts carry full
// decimal precision; rounding to the currency's minor unit is a
// presentation concern of the caller (see Rounded).
//
// The JSON field names are a stable public schema; dashboard and
// notification collaborators bind to them by name.
type BillBreakdown struct {
	EnergyCharge        decimal.Decimal `json:"energyCharge"`
	FuelLevy            decimal.Decimal `json:"fuelLevy"`
	ForexLevy           decimal.Decimal `json:"forexLevy"`
	InflationAdjustment decimal.Decimal `json:"inflationAdjustment"`
	EpraLevy            decimal.Decimal `json:"epraLevy"`
	WraLevy             decimal.Decimal `json:"wraLevy"`
	RepLevy             decimal.Decimal `json:"repLevy"`
	SubtotalBeforeVat   decimal.Decimal `json:"subtotalBeforeVat"`
	VatBase             decimal.Decimal `json:"vatBase"`
	VatAmount           decimal.Decimal `json:"vatAmount"`
	FinalTotal          decimal.Decimal `json:"finalTotal"`
	CostPerKwh          decimal.Decimal `json:"costPerKwh"`
}

// Rounded returns a copy with every amount rounded to the currency's minor
// unit for presentation. The receiver is not modified.
func (b BillBreakdown) Rounded(currency string) BillBreakdown {
	round := func(d decimal.Decimal) decimal.Decimal {
		return types.RoundToCurrencyPrecision(d, currency)
	}
	return BillBreakdown{
		EnergyCharge:        round(b.EnergyCharge),
		FuelLevy:            round(b.FuelLevy),
		ForexLevy:           round(b.ForexLevy),
		InflationAdjustment: round(b.InflationAdjustment),
		EpraLevy:            round(b.EpraLevy),
		WraLevy:             round(b.WraLevy),
		RepLevy:             round(b.RepLevy),
		SubtotalBeforeVat:   round(b.SubtotalBeforeVat),
		VatBase:             round(b.VatBase),
		VatAmount:           round(b.VatAmount),
		FinalTotal:          round(b.FinalTotal),
		// costPerKwh keeps full precision, it is a rate rather than an amount
		CostPerKwh: b.CostPerKwh,
	}
}

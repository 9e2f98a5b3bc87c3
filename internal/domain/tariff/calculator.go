package tariff

import (
	"github.com/shopspring/decimal"

	ierr "github.com/stimasense/stimasense/internal/errors"
)

// ComputeBill converts monthly consumption into an itemized bill under the
// given rate schedule.
//
// Self-generated (solar) consumption is exempt from every levy and from
// VAT: the bill is the bare energy charge.
//
// The VAT base is narrower than the pre-tax subtotal: only the energy
// charge and the fuel-cost-adjustment components (fuel, forex, inflation)
// are taxable. The EPRA, WRA and REP levies are statutory charges outside
// the VAT net, although they do count toward the subtotal.
func ComputeBill(monthlyKwh decimal.Decimal, schedule RateSchedule, selfGenerated bool) (*BillBreakdown, error) {
	if monthlyKwh.IsNegative() {
		return nil, ierr.NewErrorf("monthly consumption must be non negative, got %s", monthlyKwh).
			WithReportableDetails(map[string]any{"field": "monthlyKwh"}).
			Mark(ierr.ErrValidation)
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	energyCharge := monthlyKwh.Mul(schedule.EnergyRatePerKwh)

	if selfGenerated {
		return &BillBreakdown{
			EnergyCharge:      energyCharge,
			SubtotalBeforeVat: energyCharge,
			VatBase:           energyCharge,
			FinalTotal:        energyCharge,
			CostPerKwh:        safeCostPerKwh(energyCharge, monthlyKwh),
		}, nil
	}

	fuelLevy := monthlyKwh.Mul(schedule.FuelLevyRatePerKwh)
	forexLevy := monthlyKwh.Mul(schedule.ForexLevyRatePerKwh)
	inflationAdjustment := monthlyKwh.Mul(schedule.InflationAdjustmentRatePerKwh)
	epraLevy := monthlyKwh.Mul(schedule.EpraLevyRatePerKwh)
	wraLevy := monthlyKwh.Mul(schedule.WraLevyRatePerKwh)
	repLevy := monthlyKwh.Mul(schedule.RepLevyRatePerKwh)

	subtotal := energyCharge.
		Add(fuelLevy).
		Add(forexLevy).
		Add(inflationAdjustment).
		Add(epraLevy).
		Add(wraLevy).
		Add(repLevy)

	vatBase := energyCharge.
		Add(fuelLevy).
		Add(forexLevy).
		Add(inflationAdjustment)

	vatAmount := vatBase.Mul(schedule.VatRate)
	finalTotal := subtotal.Add(vatAmount)

	return &BillBreakdown{
		EnergyCharge:        energyCharge,
		FuelLevy:            fuelLevy,
		ForexLevy:           forexLevy,
		InflationAdjustment: inflationAdjustment,
		EpraLevy:            epraLevy,
		WraLevy:             wraLevy,
		RepLevy:             repLevy,
		SubtotalBeforeVat:   subtotal,
		VatBase:             vatBase,
		VatAmount:           vatAmount,
		FinalTotal:          finalTotal,
		CostPerKwh:          safeCostPerKwh(finalTotal, monthlyKwh),
	}, nil
}

// safeCostPerKwh guards the zero-consumption case so the division can never
// panic.
func safeCostPerKwh(total, kwh decimal.Decimal) decimal.Decimal {
	if kwh.IsPositive() {
		return total.Div(kwh)
	}
	return decimal.Zero
}

package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stimasense/stimasense/internal/domain/tariff"
)

// BillingService computes itemized bills under the configured rate
// schedule.
type BillingService interface {
	// CalculateBill itemizes a month's consumption. Self-generated (solar)
	// consumption is levy- and VAT-exempt.
	CalculateBill(ctx context.Context, monthlyKwh decimal.Decimal, selfGenerated bool) (*tariff.BillBreakdown, error)

	// CalculateBillWithSchedule itemizes consumption under an explicit
	// schedule, for callers quoting against a tariff other than the
	// configured one.
	CalculateBillWithSchedule(ctx context.Context, monthlyKwh decimal.Decimal, schedule tariff.RateSchedule, selfGenerated bool) (*tariff.BillBreakdown, error)
}

type billingService struct {
	ServiceParams
}

// NewBillingService creates a new billing service
func NewBillingService(params ServiceParams) BillingService {
	return &billingService{
		ServiceParams: params,
	}
}

func (s *billingService) CalculateBill(ctx context.Context, monthlyKwh decimal.Decimal, selfGenerated bool) (*tariff.BillBreakdown, error) {
	return s.CalculateBillWithSchedule(ctx, monthlyKwh, s.Config.Tariff.RateSchedule(), selfGenerated)
}

func (s *billingService) CalculateBillWithSchedule(ctx context.Context, monthlyKwh decimal.Decimal, schedule tariff.RateSchedule, selfGenerated bool) (*tariff.BillBreakdown, error) {
	breakdown, err := tariff.ComputeBill(monthlyKwh, schedule, selfGenerated)
	if err != nil {
		s.Logger.WithContext(ctx).Errorw("bill calculation failed",
			"monthly_kwh", monthlyKwh,
			"error", err,
		)
		return nil, err
	}

	s.Logger.WithContext(ctx).Debugw("bill calculated",
		"monthly_kwh", monthlyKwh,
		"self_generated", selfGenerated,
		"final_total", breakdown.FinalTotal,
		"cost_per_kwh", breakdown.CostPerKwh,
	)
	return breakdown, nil
}

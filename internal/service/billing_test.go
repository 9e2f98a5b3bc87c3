package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stimasense/stimasense/internal/domain/tariff"
	ierr "github.com/stimasense/stimasense/internal/errors"
	"github.com/stimasense/stimasense/internal/testutil"
)

type BillingServiceTestSuite struct {
	testutil.BaseServiceTestSuite
	billingService BillingService
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}

func (s *BillingServiceTestSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.billingService = NewBillingService(ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		MeterReadingRepo: s.GetReadingStore(),
	})
}

func (s *BillingServiceTestSuite) TestCalculateBill_ConfiguredSchedule() {
	breakdown, err := s.billingService.CalculateBill(s.GetContext(), decimal.NewFromInt(100), false)
	s.NoError(err)

	s.True(breakdown.FinalTotal.Equal(decimal.RequireFromString("3247.8")),
		"default schedule must reproduce the documented scenario, got %s", breakdown.FinalTotal)
	s.True(breakdown.VatBase.Equal(decimal.NewFromInt(2780)))
	s.True(breakdown.CostPerKwh.Equal(decimal.RequireFromString("32.478")))
}

func (s *BillingServiceTestSuite) TestCalculateBill_SelfGenerated() {
	breakdown, err := s.billingService.CalculateBill(s.GetContext(), decimal.NewFromInt(100), true)
	s.NoError(err)

	s.True(breakdown.FinalTotal.Equal(decimal.NewFromInt(2500)))
	s.True(breakdown.VatAmount.IsZero())
	s.True(breakdown.FuelLevy.IsZero())
}

func (s *BillingServiceTestSuite) TestCalculateBill_NegativeConsumption() {
	breakdown, err := s.billingService.CalculateBill(s.GetContext(), decimal.NewFromInt(-5), false)
	s.Error(err)
	s.Nil(breakdown)
	s.True(ierr.IsValidation(err))
}

func (s *BillingServiceTestSuite) TestCalculateBillWithSchedule_Override() {
	schedule := tariff.RateSchedule{
		EnergyRatePerKwh: decimal.NewFromInt(10),
		VatRate:          decimal.RequireFromString("0.08"),
	}

	breakdown, err := s.billingService.CalculateBillWithSchedule(s.GetContext(), decimal.NewFromInt(50), schedule, false)
	s.NoError(err)

	// 50 * 10 = 500 energy, zero levies, vat 8% of 500
	s.True(breakdown.EnergyCharge.Equal(decimal.NewFromInt(500)))
	s.True(breakdown.VatAmount.Equal(decimal.NewFromInt(40)))
	s.True(breakdown.FinalTotal.Equal(decimal.NewFromInt(540)))
}

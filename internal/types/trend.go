package types

import "github.com/shopspring/decimal"

// CostTrend classifies cost movement between two consecutive comparable
// periods.
type CostTrend string

const (
	CostTrendUp     CostTrend = "up"
	CostTrendDown   CostTrend = "down"
	CostTrendStable CostTrend = "stable"
)

// IsValid checks if the trend is one of the defined constants
func (t CostTrend) IsValid() bool {
	switch t {
	case CostTrendUp, CostTrendDown, CostTrendStable:
		return true
	}
	return false
}

// String returns the string representation of the trend
func (t CostTrend) String() string {
	return string(t)
}

// trendHysteresis is the ±10% band around the previous period's cost within
// which the trend reads stable, so day-to-day noise does not flap alerts.
var trendHysteresis = decimal.NewFromFloat(0.1)

// ClassifyCostTrend compares the current period's cost against the previous
// one. Movements within the hysteresis band classify as stable.
func ClassifyCostTrend(current, previous decimal.Decimal) CostTrend {
	one := decimal.NewFromInt(1)
	switch {
	case current.GreaterThan(previous.Mul(one.Add(trendHysteresis))):
		return CostTrendUp
	case current.LessThan(previous.Mul(one.Sub(trendHysteresis))):
		return CostTrendDown
	default:
		return CostTrendStable
	}
}

// Package usage aggregates a window of meter readings into the statistics
// that drive the dashboard and its alerts.
package usage

import (
	"github.com/shopspring/decimal"

	"github.com/stimasense/stimasense/internal/types"
)

// PeakHour is one hour-of-day bucket (0-23) with its aggregated
// consumption across the reading window.
type PeakHour struct {
	Hour     int             `json:"hour"`
	UsageKwh decimal.Decimal `json:"usageKwh"`
}

// AggregatedStats is the result of one aggregation pass over a reading
// window. It lives for a single computation; callers may cache it.
//
// The JSON field names are a stable public schema; dashboard and
// notification collaborators bind to them by name.
type AggregatedStats struct {
	DailyTotalKwh    decimal.Decimal `json:"dailyTotalKwh"`
	DailyCost        decimal.Decimal `json:"dailyCost"`
	WeeklyAverageKwh decimal.Decimal `json:"weeklyAverageKwh"`
	EfficiencyScore  int             `json:"efficiencyScore"`
	CostTrend        types.CostTrend `json:"costTrend"`
	PeakHours        []PeakHour      `json:"peakHours"`
}

// emptyStats is the well-defined zero result for an empty reading window.
func emptyStats() *AggregatedStats {
	return &AggregatedStats{
		DailyTotalKwh:    decimal.Zero,
		DailyCost:        decimal.Zero,
		WeeklyAverageKwh: decimal.Zero,
		EfficiencyScore:  0,
		CostTrend:        types.CostTrendStable,
		PeakHours:        []PeakHour{},
	}
}

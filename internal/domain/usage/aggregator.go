package usage

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/stimasense/stimasense/internal/domain/meter"
	ierr "github.com/stimasense/stimasense/internal/errors"
	"github.com/stimasense/stimasense/internal/types"
)

const (
	// weeklyWindowDays is the trailing window for the weekly average,
	// inclusive of the reference day. Missing days count as zero so the
	// average stays comparable across sparse histories.
	weeklyWindowDays = 7

	// topPeakHours caps the peak-hour ranking returned to callers.
	topPeakHours = 3

	dayKeyLayout = "2006-01-02"
)

// AggregateParams carries the inputs of one aggregation pass.
//
// Reference is the instant "today" is derived from; callers supply it
// explicitly (never a hidden clock read) so results are deterministic.
// Local calendar dates are taken in Reference's location.
//
// IndustryThresholds optionally overrides the efficiency thresholds for
// industry subscribers; when nil, industry falls back to SME thresholds.
type AggregateParams struct {
	Readings           []*meter.Reading
	Reference          time.Time
	Category           types.SubscriberCategory
	IndustryThresholds *types.EfficiencyThresholds
}

// Validate rejects malformed parameters, naming the offending field. For
// reading failures the reportable details carry the slice index.
func (p AggregateParams) Validate() error {
	if p.Reference.IsZero() {
		return ierr.NewError("reference instant is required").
			WithReportableDetails(map[string]any{"field": "reference"}).
			Mark(ierr.ErrValidation)
	}
	if err := p.Category.Validate(); err != nil {
		return err
	}
	for i, r := range p.Readings {
		if r == nil {
			return ierr.NewErrorf("reading at index %d is nil", i).
				WithReportableDetails(map[string]any{"field": "readings", "index": i}).
				Mark(ierr.ErrValidation)
		}
		if err := r.Validate(); err != nil {
			return ierr.WithError(err).
				WithHintf("reading at index %d is malformed", i).
				WithReportableDetails(map[string]any{"field": "readings", "index": i}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// Aggregate computes the usage statistics for a reading window. The input
// slice is never mutated; readings may arrive unsorted. An empty window is
// not an error and produces all-zero stats.
func Aggregate(params AggregateParams) (*AggregatedStats, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if len(params.Readings) == 0 {
		return emptyStats(), nil
	}

	readings := make([]*meter.Reading, len(params.Readings))
	copy(readings, params.Readings)
	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Timestamp.Before(readings[j].Timestamp)
	})

	loc := params.Reference.Location()
	refDay := params.Reference.In(loc)
	refKey := refDay.Format(dayKeyLayout)

	kwhByDay := make(map[string]decimal.Decimal)
	costByDay := make(map[string]decimal.Decimal)
	kwhByHour := make(map[int]decimal.Decimal)

	for _, r := range readings {
		local := r.Timestamp.In(loc)
		key := local.Format(dayKeyLayout)
		kwhByDay[key] = kwhByDay[key].Add(r.KwhConsumed)
		costByDay[key] = costByDay[key].Add(r.TotalCost)

		// Hour buckets collapse every date into the same 24 slots to
		// reveal habitual time-of-day patterns.
		hour := local.Hour()
		kwhByHour[hour] = kwhByHour[hour].Add(r.KwhConsumed)
	}

	weeklyTotal := decimal.Zero
	for offset := 0; offset < weeklyWindowDays; offset++ {
		key := refDay.AddDate(0, 0, -offset).Format(dayKeyLayout)
		weeklyTotal = weeklyTotal.Add(kwhByDay[key])
	}
	weeklyAverage := weeklyTotal.Div(decimal.NewFromInt(weeklyWindowDays))

	thresholds := params.Category.Thresholds(params.IndustryThresholds)

	return &AggregatedStats{
		DailyTotalKwh:    kwhByDay[refKey],
		DailyCost:        costByDay[refKey],
		WeeklyAverageKwh: weeklyAverage,
		EfficiencyScore:  thresholds.Score(weeklyAverage),
		CostTrend:        classifyTrend(costByDay, refKey),
		PeakHours:        rankPeakHours(kwhByHour),
	}, nil
}

// rankPeakHours orders the hour buckets by summed usage descending, ties
// broken by the earlier hour, truncated to the top entries.
func rankPeakHours(kwhByHour map[int]decimal.Decimal) []PeakHour {
	peaks := lo.MapToSlice(kwhByHour, func(hour int, usage decimal.Decimal) PeakHour {
		return PeakHour{Hour: hour, UsageKwh: usage}
	})
	sort.Slice(peaks, func(i, j int) bool {
		if !peaks[i].UsageKwh.Equal(peaks[j].UsageKwh) {
			return peaks[i].UsageKwh.GreaterThan(peaks[j].UsageKwh)
		}
		return peaks[i].Hour < peaks[j].Hour
	})
	if len(peaks) > topPeakHours {
		peaks = peaks[:topPeakHours]
	}
	return peaks
}

// classifyTrend compares the reference day's cost against the most recent
// prior day that has readings. With fewer than two comparable periods the
// trend reads stable.
func classifyTrend(costByDay map[string]decimal.Decimal, refKey string) types.CostTrend {
	today, ok := costByDay[refKey]
	if !ok {
		return types.CostTrendStable
	}

	// Day keys are ISO dates, so lexical order is chronological order.
	previousKey := ""
	for _, key := range lo.Keys(costByDay) {
		if key < refKey && key > previousKey {
			previousKey = key
		}
	}
	if previousKey == "" {
		return types.CostTrendStable
	}

	return types.ClassifyCostTrend(today, costByDay[previousKey])
}

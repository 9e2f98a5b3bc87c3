package service

import (
	"context"
	"time"

	"github.com/stimasense/stimasense/internal/domain/usage"
	ierr "github.com/stimasense/stimasense/internal/errors"
	"github.com/stimasense/stimasense/internal/types"
)

// UsageAnalyticsService aggregates meter readings into dashboard
// statistics. The aggregation itself is pure; this service adds logging
// and, for convenience, retrieval through the persistence collaborator.
type UsageAnalyticsService interface {
	// AggregateUsage aggregates an already-retrieved reading window.
	AggregateUsage(ctx context.Context, params usage.AggregateParams) (*usage.AggregatedStats, error)

	// AggregateUsageForMeter retrieves the meter's readings over the
	// trailing window ending at reference and aggregates them.
	AggregateUsageForMeter(ctx context.Context, meterID string, reference time.Time, category types.SubscriberCategory) (*usage.AggregatedStats, error)
}

// analyticsWindowDays is the retrieval window for meter-based aggregation:
// wide enough to cover the weekly average plus trend comparison history.
const analyticsWindowDays = 30

type usageAnalyticsService struct {
	ServiceParams
}

// NewUsageAnalyticsService creates a new usage analytics service
func NewUsageAnalyticsService(params ServiceParams) UsageAnalyticsService {
	return &usageAnalyticsService{
		ServiceParams: params,
	}
}

func (s *usageAnalyticsService) AggregateUsage(ctx context.Context, params usage.AggregateParams) (*usage.AggregatedStats, error) {
	stats, err := usage.Aggregate(params)
	if err != nil {
		s.Logger.WithContext(ctx).Errorw("usage aggregation failed",
			"readings", len(params.Readings),
			"category", params.Category,
			"error", err,
		)
		return nil, err
	}

	s.Logger.WithContext(ctx).Debugw("usage aggregated",
		"readings", len(params.Readings),
		"category", params.Category,
		"daily_total_kwh", stats.DailyTotalKwh,
		"efficiency_score", stats.EfficiencyScore,
		"cost_trend", stats.CostTrend,
	)
	return stats, nil
}

func (s *usageAnalyticsService) AggregateUsageForMeter(ctx context.Context, meterID string, reference time.Time, category types.SubscriberCategory) (*usage.AggregatedStats, error) {
	if meterID == "" {
		return nil, ierr.NewError("meter ID is required").
			WithReportableDetails(map[string]any{"field": "meterId"}).
			Mark(ierr.ErrValidation)
	}
	if s.MeterReadingRepo == nil {
		return nil, ierr.NewError("meter reading repository is not configured").
			Mark(ierr.ErrInternal)
	}

	from := reference.AddDate(0, 0, -analyticsWindowDays)
	readings, err := s.MeterReadingRepo.GetReadingsInRange(ctx, meterID, from, reference.Add(time.Nanosecond))
	if err != nil {
		s.Logger.WithContext(ctx).Errorw("failed to retrieve readings",
			"meter_id", meterID,
			"error", err,
		)
		return nil, err
	}

	return s.AggregateUsage(ctx, usage.AggregateParams{
		Readings:  readings,
		Reference: reference,
		Category:  category,
	})
}

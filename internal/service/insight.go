package service

import (
	"context"

	"github.com/stimasense/stimasense/internal/domain/insight"
	"github.com/stimasense/stimasense/internal/domain/usage"
	"github.com/stimasense/stimasense/internal/types"
)

// InsightService generates subscriber-facing insights from aggregated
// statistics.
type InsightService interface {
	// GenerateInsights evaluates the rule set against the stats. The
	// result is severity-ordered and never empty.
	GenerateInsights(ctx context.Context, stats *usage.AggregatedStats, category types.SubscriberCategory, industryType types.IndustryType) []*insight.Insight
}

type insightService struct {
	ServiceParams
}

// NewInsightService creates a new insight service
func NewInsightService(params ServiceParams) InsightService {
	return &insightService{
		ServiceParams: params,
	}
}

func (s *insightService) GenerateInsights(ctx context.Context, stats *usage.AggregatedStats, category types.SubscriberCategory, industryType types.IndustryType) []*insight.Insight {
	insights := insight.Generate(stats, category, industryType)

	s.Logger.WithContext(ctx).Debugw("insights generated",
		"category", category,
		"count", len(insights),
		"top_severity", insights[0].Severity,
	)
	return insights
}

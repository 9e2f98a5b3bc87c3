package insight

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stimasense/stimasense/internal/domain/usage"
	"github.com/stimasense/stimasense/internal/types"
)

func quietStats() *usage.AggregatedStats {
	return &usage.AggregatedStats{
		DailyTotalKwh:    decimal.Zero,
		DailyCost:        decimal.Zero,
		WeeklyAverageKwh: decimal.Zero,
		EfficiencyScore:  0,
		CostTrend:        types.CostTrendStable,
		PeakHours:        []usage.PeakHour{},
	}
}

func ids(insights []*Insight) []string {
	return lo.Map(insights, func(i *Insight, _ int) string { return i.ID })
}

func TestGenerate_FallbackWhenNothingFires(t *testing.T) {
	insights := Generate(quietStats(), types.SubscriberCategoryHousehold, "")

	require.Len(t, insights, 1, "the fallback must be exactly one insight, never an empty list")
	assert.Equal(t, RuleBuildingProfile, insights[0].ID)
	assert.Equal(t, types.InsightSeverityInfo, insights[0].Severity)
}

func TestGenerate_PeakHourRule(t *testing.T) {
	stats := quietStats()
	stats.PeakHours = []usage.PeakHour{{Hour: 7, UsageKwh: decimal.NewFromInt(5)}}

	insights := Generate(stats, types.SubscriberCategoryHousehold, "")
	require.Contains(t, ids(insights), RulePeakHourOptimization)

	peak, _ := lo.Find(insights, func(i *Insight) bool { return i.ID == RulePeakHourOptimization })
	assert.Equal(t, types.InsightSeverityInfo, peak.Severity)
	assert.Contains(t, peak.Title, "07:00")
}

func TestGenerate_PeakHourRule_EveningPeakIsWarning(t *testing.T) {
	stats := quietStats()
	stats.PeakHours = []usage.PeakHour{{Hour: 19, UsageKwh: decimal.NewFromInt(5)}}

	insights := Generate(stats, types.SubscriberCategoryHousehold, "")
	peak, found := lo.Find(insights, func(i *Insight) bool { return i.ID == RulePeakHourOptimization })
	require.True(t, found)
	assert.Equal(t, types.InsightSeverityWarning, peak.Severity)
}

func TestGenerate_EfficiencyRules(t *testing.T) {
	tests := []struct {
		name        string
		score       int
		expectRules []string
		absentRules []string
	}{
		{
			name:        "improvable score",
			score:       80,
			expectRules: []string{RuleEfficiencyImprovement},
			absentRules: []string{RuleEfficiencyExcellence},
		},
		{
			name:        "excellent score",
			score:       95,
			expectRules: []string{RuleEfficiencyExcellence},
			absentRules: []string{RuleEfficiencyImprovement},
		},
		{
			name:        "zero score fires neither",
			score:       0,
			absentRules: []string{RuleEfficiencyImprovement, RuleEfficiencyExcellence},
		},
		{
			name:        "score in the silent band",
			score:       87,
			absentRules: []string{RuleEfficiencyImprovement, RuleEfficiencyExcellence},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := quietStats()
			stats.EfficiencyScore = tt.score

			got := ids(Generate(stats, types.SubscriberCategorySME, ""))
			for _, rule := range tt.expectRules {
				assert.Contains(t, got, rule)
			}
			for _, rule := range tt.absentRules {
				assert.NotContains(t, got, rule)
			}
		})
	}
}

func TestGenerate_RisingCostAlert(t *testing.T) {
	stats := quietStats()
	stats.CostTrend = types.CostTrendUp
	stats.DailyCost = decimal.NewFromInt(500)

	insights := Generate(stats, types.SubscriberCategoryHousehold, "")
	alert, found := lo.Find(insights, func(i *Insight) bool { return i.ID == RuleRisingCostAlert })
	require.True(t, found)
	assert.Equal(t, types.InsightSeverityAlert, alert.Severity)

	// rising trend with zero cost must not alert
	stats.DailyCost = decimal.Zero
	assert.NotContains(t, ids(Generate(stats, types.SubscriberCategoryHousehold, "")), RuleRisingCostAlert)
}

func TestGenerate_UsagePatternRule(t *testing.T) {
	stats := quietStats()
	stats.DailyTotalKwh = decimal.NewFromInt(10)
	stats.WeeklyAverageKwh = decimal.NewFromInt(13) // > 10 * 1.2

	assert.Contains(t, ids(Generate(stats, types.SubscriberCategoryHousehold, "")), RuleUsagePatternOptimization)

	// exactly at the ratio must not fire
	stats.WeeklyAverageKwh = decimal.NewFromInt(12)
	assert.NotContains(t, ids(Generate(stats, types.SubscriberCategoryHousehold, "")), RuleUsagePatternOptimization)
}

func TestGenerate_SeverityOrdering(t *testing.T) {
	stats := quietStats()
	stats.PeakHours = []usage.PeakHour{{Hour: 10, UsageKwh: decimal.NewFromInt(4)}} // info
	stats.EfficiencyScore = 80                                                      // warning
	stats.CostTrend = types.CostTrendUp
	stats.DailyCost = decimal.NewFromInt(900) // alert

	insights := Generate(stats, types.SubscriberCategoryHousehold, "")
	require.True(t, len(insights) >= 3)

	assert.Equal(t, RuleRisingCostAlert, insights[0].ID, "alerts surface first")
	assert.Equal(t, types.InsightSeverityInfo, insights[len(insights)-1].Severity, "info surfaces last")
	for i := 1; i < len(insights); i++ {
		assert.LessOrEqual(t, insights[i-1].Severity.Rank(), insights[i].Severity.Rank())
	}
}

func TestGenerate_IndustryRecommendationWording(t *testing.T) {
	stats := quietStats()
	stats.DailyTotalKwh = decimal.NewFromInt(10)
	stats.WeeklyAverageKwh = decimal.NewFromInt(20)

	insights := Generate(stats, types.SubscriberCategoryIndustry, types.IndustryTypeManufacturing)
	pattern, found := lo.Find(insights, func(i *Insight) bool { return i.ID == RuleUsagePatternOptimization })
	require.True(t, found)
	assert.Contains(t, pattern.Recommendation, "manufacturing")
}

func TestGenerate_IsDeterministic(t *testing.T) {
	stats := quietStats()
	stats.PeakHours = []usage.PeakHour{{Hour: 19, UsageKwh: decimal.NewFromInt(6)}}
	stats.EfficiencyScore = 92

	first := Generate(stats, types.SubscriberCategorySME, "")
	second := Generate(stats, types.SubscriberCategorySME, "")
	assert.Equal(t, first, second, "identical inputs must produce identical insights")
}

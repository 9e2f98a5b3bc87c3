package insight

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/stimasense/stimasense/internal/domain/usage"
	"github.com/stimasense/stimasense/internal/types"
)

// Thresholds the rules fire on. Scores and ratios are coarse on purpose;
// the rule set trades nuance for explainability.
const (
	improvableScoreCeiling = 85
	excellentScoreFloor    = 90
)

// eveningPeakStart..eveningPeakEnd is the grid's evening demand peak.
// Habitual consumption concentrated there is flagged at warning severity
// instead of info.
const (
	eveningPeakStart = 18
	eveningPeakEnd   = 21
)

// usagePatternRatio flags an uneven pattern when the weekly average runs
// more than 20% above the reference day's total.
var usagePatternRatio = decimal.NewFromFloat(1.2)

// Generate evaluates every rule against the stats and returns the insights
// that fire, ordered alert > warning > success > info. The result is never
// empty: when nothing fires, a single getting-started insight is returned
// so callers always have something to render. The industryType refines
// recommendation wording for industry subscribers and is otherwise ignored.
func Generate(stats *usage.AggregatedStats, category types.SubscriberCategory, industryType types.IndustryType) []*Insight {
	insights := make([]*Insight, 0, 4)

	if len(stats.PeakHours) > 0 {
		insights = append(insights, peakHourInsight(stats.PeakHours[0], category))
	}

	if stats.EfficiencyScore > 0 && stats.EfficiencyScore < improvableScoreCeiling {
		insights = append(insights, &Insight{
			ID:       RuleEfficiencyImprovement,
			Severity: types.InsightSeverityWarning,
			Title:    "Room to improve efficiency",
			Description: fmt.Sprintf(
				"Your efficiency score is %d out of 100, below the %d mark for your category.",
				stats.EfficiencyScore, improvableScoreCeiling),
			Recommendation: "Review always-on appliances and switch heavy loads to off-peak hours.",
		})
	}

	if stats.CostTrend == types.CostTrendUp && stats.DailyCost.IsPositive() {
		insights = append(insights, &Insight{
			ID:       RuleRisingCostAlert,
			Severity: types.InsightSeverityAlert,
			Title:    "Electricity costs are rising",
			Description: fmt.Sprintf(
				"Today's cost of %s is more than 10%% above your previous period.",
				stats.DailyCost.StringFixed(2)),
			Recommendation: "Check for newly added or malfunctioning equipment driving the increase.",
		})
	}

	if stats.WeeklyAverageKwh.GreaterThan(stats.DailyTotalKwh.Mul(usagePatternRatio)) {
		insights = append(insights, &Insight{
			ID:       RuleUsagePatternOptimization,
			Severity: types.InsightSeverityWarning,
			Title:    "Uneven usage pattern",
			Description: fmt.Sprintf(
				"Your typical day uses %s kWh, well above today's %s kWh.",
				stats.WeeklyAverageKwh.StringFixed(1), stats.DailyTotalKwh.StringFixed(1)),
			Recommendation: patternRecommendation(category, industryType),
		})
	}

	if stats.EfficiencyScore >= excellentScoreFloor {
		insights = append(insights, &Insight{
			ID:       RuleEfficiencyExcellence,
			Severity: types.InsightSeveritySuccess,
			Title:    "Excellent energy efficiency",
			Description: fmt.Sprintf(
				"Your efficiency score of %d puts you among the most efficient %s subscribers.",
				stats.EfficiencyScore, category),
			Recommendation: "Keep up your current usage habits.",
		})
	}

	if len(insights) == 0 {
		insights = append(insights, &Insight{
			ID:          RuleBuildingProfile,
			Severity:    types.InsightSeverityInfo,
			Title:       "Building your usage profile",
			Description: "We are still learning your consumption patterns. Insights improve as more readings arrive.",
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Severity.Rank() < insights[j].Severity.Rank()
	})
	return insights
}

// peakHourInsight names the subscriber's heaviest hour. Consumption
// concentrated in the grid's evening peak is a warning; elsewhere it is
// informational.
func peakHourInsight(top usage.PeakHour, category types.SubscriberCategory) *Insight {
	severity := types.InsightSeverityInfo
	if top.Hour >= eveningPeakStart && top.Hour <= eveningPeakEnd {
		severity = types.InsightSeverityWarning
	}

	recommendation := "Shift flexible loads like water heating and laundry away from this hour."
	if category != types.SubscriberCategoryHousehold {
		recommendation = "Schedule energy-intensive operations outside this hour where possible."
	}

	return &Insight{
		ID:       RulePeakHourOptimization,
		Severity: severity,
		Title:    fmt.Sprintf("Peak usage around %02d:00", top.Hour),
		Description: fmt.Sprintf(
			"Hour %02d:00 accounts for your highest consumption at %s kWh across the period.",
			top.Hour, top.UsageKwh.StringFixed(1)),
		Recommendation: recommendation,
	}
}

func patternRecommendation(category types.SubscriberCategory, industryType types.IndustryType) string {
	switch category {
	case types.SubscriberCategoryIndustry:
		if industryType != "" {
			return fmt.Sprintf("Consider staggering %s operations to smooth daily consumption.", industryType)
		}
		return "Consider staggering production shifts to smooth daily consumption."
	case types.SubscriberCategorySME:
		return "Spread business-hours equipment use more evenly across the week."
	default:
		return "Spread heavy household chores more evenly across the week."
	}
}

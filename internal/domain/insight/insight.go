// Package insight turns aggregated usage statistics into actionable,
// subscriber-facing insights through a fixed rule set.
package insight

import (
	"github.com/stimasense/stimasense/internal/types"
)

// Rule identifiers. Insights are value objects whose identity is the
// triggering rule plus the current stats, so the IDs are deterministic
// slugs rather than generated identifiers: identical inputs must produce
// identical outputs.
const (
	RulePeakHourOptimization     = "peak_hour_optimization"
	RuleEfficiencyImprovement    = "efficiency_improvement"
	RuleRisingCostAlert          = "rising_cost_alert"
	RuleUsagePatternOptimization = "usage_pattern_optimization"
	RuleEfficiencyExcellence     = "efficiency_excellence"
	RuleBuildingProfile          = "building_profile"
)

// Insight is one actionable observation derived from a subscriber's
// aggregated statistics.
//
// The JSON field names are a stable public schema; dashboard and
// notification collaborators bind to them by name.
type Insight struct {
	ID             string                `json:"id"`
	Severity       types.InsightSeverity `json:"severity"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Recommendation string                `json:"recommendation,omitempty"`
}

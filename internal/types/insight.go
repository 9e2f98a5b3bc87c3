package types

// InsightSeverity orders insights for presentation: alerts surface first,
// informational notes last.
type InsightSeverity string

const (
	InsightSeverityAlert   InsightSeverity = "alert"
	InsightSeverityWarning InsightSeverity = "warning"
	InsightSeveritySuccess InsightSeverity = "success"
	InsightSeverityInfo    InsightSeverity = "info"
)

// IsValid checks if the severity is one of the defined constants
func (s InsightSeverity) IsValid() bool {
	switch s {
	case InsightSeverityAlert, InsightSeverityWarning, InsightSeveritySuccess, InsightSeverityInfo:
		return true
	}
	return false
}

// String returns the string representation of the severity
func (s InsightSeverity) String() string {
	return string(s)
}

var severityRank = map[InsightSeverity]int{
	InsightSeverityAlert:   0,
	InsightSeverityWarning: 1,
	InsightSeveritySuccess: 2,
	InsightSeverityInfo:    3,
}

// Rank returns the sort rank of the severity, lower surfacing first.
// Unknown severities rank last.
func (s InsightSeverity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

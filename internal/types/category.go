package types

import (
	"github.com/shopspring/decimal"

	ierr "github.com/stimasense/stimasense/internal/errors"
)

// SubscriberCategory classifies a metered connection for analytics purposes.
// Category-specific consumption norms drive efficiency scoring.
type SubscriberCategory string

const (
	SubscriberCategoryHousehold SubscriberCategory = "household"
	SubscriberCategorySME       SubscriberCategory = "sme"
	SubscriberCategoryIndustry  SubscriberCategory = "industry"
)

// IsValid checks if the category is one of the defined constants
func (c SubscriberCategory) IsValid() bool {
	switch c {
	case SubscriberCategoryHousehold, SubscriberCategorySME, SubscriberCategoryIndustry:
		return true
	}
	return false
}

// String returns the string representation of the category
func (c SubscriberCategory) String() string {
	return string(c)
}

// Validate returns a validation error for unknown categories.
func (c SubscriberCategory) Validate() error {
	if !c.IsValid() {
		return ierr.NewErrorf("invalid subscriber category: %s", c).
			WithHint("category must be one of household, sme, industry").
			WithReportableDetails(map[string]any{"field": "category"}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IndustryType refines the industry category. Industrial connections vary
// too widely for a single consumption norm, so each sub-type may carry its
// own efficiency thresholds.
type IndustryType string

const (
	IndustryTypeManufacturing IndustryType = "manufacturing"
	IndustryTypeAgriculture   IndustryType = "agriculture"
	IndustryTypeCommercial    IndustryType = "commercial"
)

// EfficiencyThresholds maps a weekly average consumption to a coarse
// 0-100 score. Averages below Low score ScoreLow, below Mid score ScoreMid,
// everything else scores ScoreHigh. The breakpoints are exclusive: an
// average exactly at Low falls into the Mid band.
type EfficiencyThresholds struct {
	Low       decimal.Decimal
	Mid       decimal.Decimal
	ScoreLow  int
	ScoreMid  int
	ScoreHigh int
}

// Score resolves the weekly average against the thresholds.
func (t EfficiencyThresholds) Score(weeklyAverageKwh decimal.Decimal) int {
	switch {
	case weeklyAverageKwh.LessThan(t.Low):
		return t.ScoreLow
	case weeklyAverageKwh.LessThan(t.Mid):
		return t.ScoreMid
	default:
		return t.ScoreHigh
	}
}

var (
	householdThresholds = EfficiencyThresholds{
		Low:       decimal.NewFromInt(10),
		Mid:       decimal.NewFromInt(20),
		ScoreLow:  95,
		ScoreMid:  87,
		ScoreHigh: 75,
	}
	smeThresholds = EfficiencyThresholds{
		Low:       decimal.NewFromInt(50),
		Mid:       decimal.NewFromInt(100),
		ScoreLow:  90,
		ScoreMid:  80,
		ScoreHigh: 70,
	}
)

// Thresholds resolves the efficiency thresholds for a category. Industry
// thresholds are sub-type dependent and supplied by the caller; when
// industry is nil the SME thresholds apply. This fallback is an explicit,
// tested branch rather than a silent default. The override is ignored for
// non-industry categories.
func (c SubscriberCategory) Thresholds(industry *EfficiencyThresholds) EfficiencyThresholds {
	switch c {
	case SubscriberCategoryHousehold:
		return householdThresholds
	case SubscriberCategoryIndustry:
		if industry != nil {
			return *industry
		}
		return smeThresholds
	default:
		return smeThresholds
	}
}

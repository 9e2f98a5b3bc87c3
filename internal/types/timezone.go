package types

import (
	"strings"
	"time"
)

// DefaultTimezone is the local timezone assumed for calendar bucketing when
// deployments do not configure one.
const DefaultTimezone = "Africa/Nairobi"

// timezoneAbbreviationMap maps common three-letter timezone abbreviations to
// IANA timezone identifiers so config values like "EAT" resolve correctly.
var timezoneAbbreviationMap = map[string]string{
	"EAT": "Africa/Nairobi", // East Africa Time
	"CAT": "Africa/Harare",  // Central Africa Time
	"WAT": "Africa/Lagos",   // West Africa Time
	"GMT": "Europe/London",  // Greenwich Mean Time
	"CET": "Europe/Berlin",  // Central European Time
	"IST": "Asia/Kolkata",   // Indian Standard Time
	"EST": "America/New_York",
	"PST": "America/Los_Angeles",
}

// ResolveTimezone converts a timezone abbreviation to an IANA identifier or
// returns the input if it's already valid
func ResolveTimezone(timezone string) string {
	if ianaName, exists := timezoneAbbreviationMap[strings.ToUpper(timezone)]; exists {
		return ianaName
	}
	return timezone
}

// ValidateTimezone validates a timezone by resolving abbreviations and
// checking with time.LoadLocation
func ValidateTimezone(timezone string) error {
	_, err := time.LoadLocation(ResolveTimezone(timezone))
	return err
}

package models

import "strings"

// Frequency is a maintenance interval label attached to an asset.
type Frequency string

const (
	FrequencyDaily       Frequency = "daily"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyAnnually    Frequency = "annually"
)

// NormalizeFrequency maps a raw frequency label to a known Frequency.
// Matching is case-insensitive; unrecognized labels fall back to monthly.
func NormalizeFrequency(label string) Frequency {
	switch Frequency(strings.ToLower(strings.TrimSpace(label))) {
	case FrequencyDaily:
		return FrequencyDaily
	case FrequencyWeekly:
		return FrequencyWeekly
	case FrequencyFortnightly:
		return FrequencyFortnightly
	case FrequencyMonthly:
		return FrequencyMonthly
	case FrequencyQuarterly:
		return FrequencyQuarterly
	case FrequencyAnnually:
		return FrequencyAnnually
	default:
		return FrequencyMonthly
	}
}

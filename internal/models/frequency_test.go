package models

import "testing"

func TestNormalizeFrequency(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Frequency
	}{
		{"daily", "daily", FrequencyDaily},
		{"weekly", "weekly", FrequencyWeekly},
		{"fortnightly", "fortnightly", FrequencyFortnightly},
		{"monthly", "monthly", FrequencyMonthly},
		{"quarterly", "quarterly", FrequencyQuarterly},
		{"annually", "annually", FrequencyAnnually},
		{"mixed case", "Quarterly", FrequencyQuarterly},
		{"upper case", "ANNUALLY", FrequencyAnnually},
		{"surrounding spaces", "  weekly  ", FrequencyWeekly},
		{"unknown label defaults to monthly", "bi-hourly", FrequencyMonthly},
		{"empty defaults to monthly", "", FrequencyMonthly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeFrequency(tt.label)
			if result != tt.expected {
				t.Errorf("NormalizeFrequency(%q) = %v, want %v", tt.label, result, tt.expected)
			}
		})
	}
}

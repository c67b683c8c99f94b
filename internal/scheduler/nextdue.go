package scheduler

import (
	"time"

	"github.com/ukydev/plant-maintenance/internal/models"
)

// NextServiceDate advances lastServiceDate by one maintenance interval.
// Unrecognized frequency labels advance by one month. Month-based intervals
// use calendar arithmetic, so month-end dates normalize forward
// (Jan 31 + 1 month = Mar 2 in a leap year).
func NextServiceDate(lastServiceDate time.Time, frequency string) time.Time {
	switch models.NormalizeFrequency(frequency) {
	case models.FrequencyDaily:
		return lastServiceDate.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return lastServiceDate.AddDate(0, 0, 7)
	case models.FrequencyFortnightly:
		return lastServiceDate.AddDate(0, 0, 14)
	case models.FrequencyQuarterly:
		return lastServiceDate.AddDate(0, 3, 0)
	case models.FrequencyAnnually:
		return lastServiceDate.AddDate(1, 0, 0)
	default:
		return lastServiceDate.AddDate(0, 1, 0)
	}
}

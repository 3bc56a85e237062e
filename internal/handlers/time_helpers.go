package handlers

import (
	"time"

	"github.com/ferrobarbershop/booking-api/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(),
	)
}

// timezoneDay returns today+offset days as a date key in the shop's
// timezone.
func timezoneDay(offset int) string {
	return timezone.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

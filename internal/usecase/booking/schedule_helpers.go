package booking

import (
	"fmt"

	"github.com/ferrobarbershop/booking-api/internal/domain/schedule"
	"github.com/ferrobarbershop/booking-api/internal/models"
)

// dayScheduleOf converts stored working hours into the resolver's day
// schedule. Stored clock strings are internal data, so a parse failure is an
// invariant violation, not a request error.
func dayScheduleOf(wh *models.WorkingHours) (schedule.DaySchedule, error) {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return schedule.DaySchedule{Closed: true}, nil
	}

	opens, err := schedule.ParseClock(wh.StartTime)
	if err != nil {
		return schedule.DaySchedule{}, fmt.Errorf("working hours %d: %w", wh.ID, err)
	}
	closes, err := schedule.ParseClock(wh.EndTime)
	if err != nil {
		return schedule.DaySchedule{}, fmt.Errorf("working hours %d: %w", wh.ID, err)
	}

	day := schedule.DaySchedule{OpensAt: opens, ClosesAt: closes}

	if wh.LunchStart != "" && wh.LunchEnd != "" {
		lunchStart, err := schedule.ParseClock(wh.LunchStart)
		if err != nil {
			return schedule.DaySchedule{}, fmt.Errorf("working hours %d: %w", wh.ID, err)
		}
		lunchEnd, err := schedule.ParseClock(wh.LunchEnd)
		if err != nil {
			return schedule.DaySchedule{}, fmt.Errorf("working hours %d: %w", wh.ID, err)
		}
		day.LunchStart = lunchStart
		day.LunchEnd = lunchEnd
	}

	return day, nil
}

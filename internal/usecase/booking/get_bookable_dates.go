package booking

import (
	"context"
	"time"

	domain "github.com/ferrobarbershop/booking-api/internal/domain/booking"
	"github.com/ferrobarbershop/booking-api/internal/domain/schedule"
	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/timezone"
)

type BookableDate struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	OpenSlots int    `json:"open_slots"`
}

type GetBookableDates struct {
	repo domain.Repository
}

func NewGetBookableDates(repo domain.Repository) *GetBookableDates {
	return &GetBookableDates{repo: repo}
}

func (uc *GetBookableDates) Execute(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) ([]BookableDate, error) {

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	hours, err := uc.repo.ListWorkingWeek(ctx, barberID)
	if err != nil {
		return nil, err
	}

	week := make(map[int]schedule.DaySchedule, len(hours))
	for i := range hours {
		day, err := dayScheduleOf(&hours[i])
		if err != nil {
			return nil, err
		}
		week[hours[i].Weekday] = day
	}

	weekFn := func(wd time.Weekday) schedule.DaySchedule {
		day, ok := week[int(wd)]
		if !ok {
			return schedule.DaySchedule{Closed: true}
		}
		return day
	}

	loc := timezone.Location()
	now := timezone.Now()

	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	windowEnd := windowStart.AddDate(0, 0, schedule.BookingWindowDays)

	appointments, err := uc.repo.ListUpcomingBetween(ctx, barberID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	bookedByDate := make(map[string][]schedule.BookedRange)
	for _, ap := range appointments {
		start := ap.StartTime.In(loc)
		key := start.Format(schedule.DateKey)
		bookedByDate[key] = append(bookedByDate[key], schedule.BookedRange{
			Start:       schedule.ClockOf(start),
			DurationMin: ap.DurationMin,
		})
	}

	options := schedule.BookableDates(weekFn, service.DurationMin, bookedByDate, now)

	out := make([]BookableDate, 0, len(options))
	for _, opt := range options {
		out = append(out, BookableDate{
			Date:      opt.Date.Format(schedule.DateKey),
			Weekday:   opt.Date.Weekday().String(),
			OpenSlots: opt.OpenSlots,
		})
	}

	return out, nil
}

package booking

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/ferrobarbershop/booking-api/internal/domain/booking"
	"github.com/ferrobarbershop/booking-api/internal/domain/schedule"
	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/timezone"
)

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint

	// Date is midnight of the requested day in the shop's timezone.
	Date time.Time
}

type TimeSlot struct {
	Start   string           `json:"start"`
	End     string           `json:"end"`
	Verdict schedule.Verdict `json:"verdict"`
}

type GetAvailability struct {
	repo  domain.Repository
	cache SlotCache
}

func NewGetAvailability(repo domain.Repository, cache SlotCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, int(in.Date.Weekday()))
	if err != nil {
		return []TimeSlot{}, nil
	}

	day, err := dayScheduleOf(wh)
	if err != nil {
		return nil, err
	}
	if day.Closed {
		return []TimeSlot{}, nil
	}

	now := timezone.Now()
	sameDay := in.Date.Year() == now.Year() && in.Date.YearDay() == now.YearDay()
	dateKey := in.Date.Format(schedule.DateKey)

	// Same-day output depends on the wall clock, so only other days are
	// worth memoizing.
	cacheable := !sameDay && uc.cache != nil

	if cacheable {
		if payload, ok := uc.cache.Get(ctx, in.BarberID, dateKey, service.DurationMin); ok {
			var cached []TimeSlot
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
		}
	}

	dayStart := in.Date
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListUpcomingBetween(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location()
	booked := make([]schedule.BookedRange, 0, len(appointments))
	for _, ap := range appointments {
		booked = append(booked, schedule.BookedRange{
			Start:       schedule.ClockOf(ap.StartTime.In(loc)),
			DurationMin: ap.DurationMin,
		})
	}

	slots := schedule.AvailableTimes(
		day,
		service.DurationMin,
		booked,
		sameDay,
		schedule.ClockOf(now),
	)

	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeSlot{
			Start:   s.Start.String(),
			End:     (s.Start + schedule.TimeOfDay(service.DurationMin)).String(),
			Verdict: s.Verdict,
		})
	}

	if cacheable {
		if payload, err := json.Marshal(out); err == nil {
			uc.cache.Put(ctx, in.BarberID, dateKey, service.DurationMin, payload)
		}
	}

	return out, nil
}

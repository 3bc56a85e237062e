package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ferrobarbershop/booking-api/internal/audit"
	domain "github.com/ferrobarbershop/booking-api/internal/domain/booking"
	"github.com/ferrobarbershop/booking-api/internal/domain/schedule"
	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/models"
	"github.com/ferrobarbershop/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	BarberID  uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewCreateBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	cache SlotCache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: auditDispatcher,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute re-validates everything the availability view promised, because the
// slot may have been taken between viewing and confirming. The final overlap
// check runs inside the repository transaction.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	startClock := schedule.ClockOf(start)
	if int(startClock)%schedule.GridStepMinutes != 0 {
		return nil, httperr.ErrBusiness("off_grid_time")
	}

	// Same rule that yields the too-soon verdict: no booking may start
	// within the lead window, and never in the past.
	now := timezone.Now()
	if !start.After(now.Add(schedule.SameDayLeadMinutes * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	endClock := startClock + schedule.TimeOfDay(service.DurationMin)

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, int(start.Weekday()))
	if err != nil {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	day, err := dayScheduleOf(wh)
	if err != nil {
		return nil, err
	}
	if !day.Allows(startClock, endClock) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	ap := &models.Appointment{
		Reference:   uuid.NewString(),
		UserID:      in.UserID,
		BarberID:    in.BarberID,
		ServiceID:   in.ServiceID,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(service.DurationMin) * time.Minute),
		DurationMin: service.DurationMin,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateScheduled(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.BarberID, start.Format(schedule.DateKey))
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

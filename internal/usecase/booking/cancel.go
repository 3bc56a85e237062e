package booking

import (
	"context"

	"github.com/ferrobarbershop/booking-api/internal/audit"
	domain "github.com/ferrobarbershop/booking-api/internal/domain/booking"
	"github.com/ferrobarbershop/booking-api/internal/domain/schedule"
	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/models"
	"github.com/ferrobarbershop/booking-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewCancelBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	cache SlotCache,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditDispatcher,
		cache: cache,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetForUser(ctx, appointmentID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.Now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		day := ap.StartTime.In(timezone.Location()).Format(schedule.DateKey)
		uc.cache.Invalidate(ctx, ap.BarberID, day)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

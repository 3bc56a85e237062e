package booking

import (
	"context"
	"time"

	"github.com/ferrobarbershop/booking-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListWorkingWeek(
		ctx context.Context,
		barberID uint,
	) ([]models.WorkingHours, error)

	// -------- Appointments (read) --------
	ListUpcomingBetween(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	GetForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// -------- Appointments (write) --------

	// CreateScheduled persists a new upcoming appointment, re-checking the
	// overlap guard inside the same transaction. Losing the race returns a
	// time_conflict business error, never a double booking.
	CreateScheduled(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error
}

package booking

import (
	"context"

	domain "github.com/ferrobarbershop/booking-api/internal/domain/booking"
	"github.com/ferrobarbershop/booking-api/internal/dto"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingListDTO, error) {

	appointments, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.BookingListDTO{
			ID:          ap.ID,
			Reference:   ap.Reference,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			DurationMin: ap.DurationMin,
			Status:      ap.Status,
			BarberName:  ap.Barber.Name,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}

package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/models"
	"github.com/ferrobarbershop/booking-api/internal/timezone"
)

func futureMidnight() time.Time {
	loc := timezone.Location()
	d := timezone.Now().AddDate(0, 0, 7)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

func slotByStart(t *testing.T, slots []TimeSlot, start string) TimeSlot {
	t.Helper()
	for _, s := range slots {
		if s.Start == start {
			return s
		}
	}
	t.Fatalf("slot %s not in response", start)
	return TimeSlot{}
}

func TestGetAvailability(t *testing.T) {
	repo := newFakeRepo()
	repo.openAllWeek()
	repo.addService(1, "Beard Trim", 30)

	day := futureMidnight()
	bookedStart := time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, day.Location())
	repo.appointments = append(repo.appointments, models.Appointment{
		ID: 1, UserID: 7, BarberID: 1, ServiceID: 1,
		StartTime:   bookedStart,
		EndTime:     bookedStart.Add(45 * time.Minute),
		DurationMin: 45,
		Status:      "upcoming",
	})

	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: day,
	})
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.Equal(t, "taken", string(slotByStart(t, slots, "10:00").Verdict))
	assert.Equal(t, "taken", string(slotByStart(t, slots, "10:30").Verdict))
	assert.Equal(t, "open", string(slotByStart(t, slots, "11:00").Verdict))
	assert.Equal(t, "10:30", slotByStart(t, slots, "10:00").End)

	for _, s := range slots {
		assert.NotEqual(t, "12:30", s.Start, "lunch slots never appear")
		assert.NotEqual(t, "13:00", s.Start)
		assert.NotEqual(t, "13:30", s.Start)
	}
}

func TestGetAvailabilityClosedWeekday(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Beard Trim", 30)
	// no hours configured: closed

	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: futureMidnight(),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	repo := newFakeRepo()
	repo.openAllWeek()

	uc := NewGetAvailability(repo, nil)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: 1, ServiceID: 42, Date: futureMidnight(),
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetBookableDates(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, "Classic Cut", 45)
	// open Tuesday through Saturday only
	for wd := 2; wd <= 6; wd++ {
		repo.hours[wd] = models.WorkingHours{
			ID: uint(wd), BarberID: 1, Weekday: wd, Active: true,
			StartTime: "09:00", EndTime: "19:30",
			LunchStart: "12:30", LunchEnd: "14:00",
		}
	}

	uc := NewGetBookableDates(repo)

	dates, err := uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)
	require.NotEmpty(t, dates)

	for _, d := range dates {
		assert.NotEqual(t, "Sunday", d.Weekday)
		assert.NotEqual(t, "Monday", d.Weekday)
		assert.Greater(t, d.OpenSlots, 0)

		parsed, perr := time.Parse("2006-01-02", d.Date)
		require.NoError(t, perr)
		assert.NotEqual(t, time.Sunday, parsed.Weekday())
		assert.NotEqual(t, time.Monday, parsed.Weekday())
	}
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.openAllWeek()
	repo.addService(1, "Classic Cut", 45)

	createUC := newCreateUC(repo)
	ap, err := createUC.Execute(context.Background(), CreateBookingInput{
		UserID: 7, BarberID: 1, ServiceID: 1, Date: futureDate(), Time: "10:00",
	})
	require.NoError(t, err)

	cancelUC := NewCancelBooking(repo, nil, nil)

	// wrong owner
	_, err = cancelUC.Execute(context.Background(), 99, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	cancelled, err := cancelUC.Execute(context.Background(), 7, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// cancelling twice is rejected
	_, err = cancelUC.Execute(context.Background(), 7, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	// the freed range is bookable again
	_, err = createUC.Execute(context.Background(), CreateBookingInput{
		UserID: 8, BarberID: 1, ServiceID: 1, Date: futureDate(), Time: "10:00",
	})
	assert.NoError(t, err)
}

func TestListUserBookings(t *testing.T) {
	repo := newFakeRepo()
	repo.openAllWeek()
	repo.addService(1, "Classic Cut", 45)

	createUC := newCreateUC(repo)
	_, err := createUC.Execute(context.Background(), CreateBookingInput{
		UserID: 7, BarberID: 1, ServiceID: 1, Date: futureDate(), Time: "10:00",
	})
	require.NoError(t, err)

	listUC := NewListUserBookings(repo)

	mine, err := listUC.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "upcoming", mine[0].Status)
	assert.Equal(t, 45, mine[0].DurationMin)

	other, err := listUC.Execute(context.Background(), 8)
	require.NoError(t, err)
	assert.Empty(t, other)
}

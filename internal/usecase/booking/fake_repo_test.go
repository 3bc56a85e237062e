package booking

import (
	"context"
	"errors"
	"time"

	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is a single-barber in-memory repository mirroring the overlap
// guard of the real one.
type fakeRepo struct {
	barbers      map[uint]models.Barber
	services     map[uint]models.Service
	hours        map[int]models.WorkingHours
	appointments []models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:  map[uint]models.Barber{1: {ID: 1, Name: "Luca Franco", Active: true}},
		services: map[uint]models.Service{},
		hours:    map[int]models.WorkingHours{},
		nextID:   1,
	}
}

func (f *fakeRepo) addService(id uint, name string, durationMin int) {
	f.services[id] = models.Service{ID: id, Name: name, DurationMin: durationMin, Active: true}
}

func (f *fakeRepo) openAllWeek() {
	for wd := 0; wd <= 6; wd++ {
		f.hours[wd] = models.WorkingHours{
			ID: uint(wd + 1), BarberID: 1, Weekday: wd, Active: true,
			StartTime: "09:00", EndTime: "19:30",
			LunchStart: "12:30", LunchEnd: "14:00",
		}
	}
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, errNotFound
	}
	return &b, nil
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errNotFound
	}
	return &s, nil
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	wh, ok := f.hours[weekday]
	if !ok {
		return nil, errNotFound
	}
	return &wh, nil
}

func (f *fakeRepo) ListWorkingWeek(_ context.Context, _ uint) ([]models.WorkingHours, error) {
	out := make([]models.WorkingHours, 0, len(f.hours))
	for wd := 0; wd <= 6; wd++ {
		if wh, ok := f.hours[wd]; ok {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListUpcomingBetween(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Status == "upcoming" &&
			!ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetForUser(_ context.Context, appointmentID, userID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID && f.appointments[i].UserID == userID {
			ap := f.appointments[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateScheduled(_ context.Context, ap *models.Appointment) error {
	for _, existing := range f.appointments {
		if existing.BarberID == ap.BarberID && existing.Status == "upcoming" &&
			ap.StartTime.Before(existing.EndTime) && ap.EndTime.After(existing.StartTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

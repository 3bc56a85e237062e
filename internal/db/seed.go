package db

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ferrobarbershop/booking-api/internal/config"
	"github.com/ferrobarbershop/booking-api/internal/models"
)

// Seed inserts the shop's fixed catalog on first boot. Reruns are no-ops,
// matching rows are looked up by their natural keys.
func Seed(db *gorm.DB, cfg *config.Config) error {
	barbers := []models.Barber{
		{Name: "Luca Franco", Title: "Owner", Active: true},
		{Name: "Alessio De Angelis", Title: "Barber", Active: true},
	}

	for i := range barbers {
		if err := db.
			Where(models.Barber{Name: barbers[i].Name}).
			FirstOrCreate(&barbers[i]).Error; err != nil {
			return fmt.Errorf("seed barber %s: %w", barbers[i].Name, err)
		}
	}

	services := []models.Service{
		{Slug: "classic-cut", Name: "Classic Cut", Description: "Scissor and clipper cut with styling.", DurationMin: 45, Price: 25, Active: true},
		{Slug: "beard-trim", Name: "Beard Trim", Description: "Shaping and line-up with razor finish.", DurationMin: 30, Price: 15, Active: true},
		{Slug: "hot-towel-shave", Name: "Hot Towel Shave", Description: "Traditional straight razor shave.", DurationMin: 40, Price: 20, Active: true},
		{Slug: "grooming-package", Name: "Grooming Package", Description: "Cut, shave and beard care in one sitting.", DurationMin: 90, Price: 50, Active: true},
	}

	for i := range services {
		if err := db.
			Where(models.Service{Slug: services[i].Slug}).
			FirstOrCreate(&services[i]).Error; err != nil {
			return fmt.Errorf("seed service %s: %w", services[i].Slug, err)
		}
	}

	for _, barber := range barbers {
		if err := seedWeek(db, barber.ID); err != nil {
			return err
		}
	}

	return seedAdmin(db, cfg)
}

// weekTemplate is the shop's weekly grid for one barber: Tue/Wed/Fri open
// at 09:00, Thu/Sat at 09:30, Sunday and Monday closed.
func weekTemplate(barberID uint) []models.WorkingHours {
	opensAt := map[int]string{2: "09:00", 3: "09:00", 4: "09:30", 5: "09:00", 6: "09:30"}

	week := make([]models.WorkingHours, 0, 7)
	for weekday := 0; weekday <= 6; weekday++ {
		wh := models.WorkingHours{
			BarberID: barberID,
			Weekday:  weekday,
		}
		if start, open := opensAt[weekday]; open {
			wh.Active = true
			wh.StartTime = start
			wh.EndTime = "19:30"
			wh.LunchStart = "12:30"
			wh.LunchEnd = "14:00"
		}
		week = append(week, wh)
	}

	return week
}

func seedWeek(db *gorm.DB, barberID uint) error {
	for _, wh := range weekTemplate(barberID) {
		// Explicit condition: a struct Where would drop weekday 0 as a
		// zero value and bind Sunday to an arbitrary row.
		if err := db.
			Where("barber_id = ? AND weekday = ?", barberID, wh.Weekday).
			FirstOrCreate(&wh).Error; err != nil {
			return fmt.Errorf("seed working hours wd=%d: %w", wh.Weekday, err)
		}
	}

	return nil
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", cfg.SeedAdminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		FirstName:    "Shop",
		LastName:     "Admin",
		Email:        cfg.SeedAdminEmail,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}

	return db.Create(&admin).Error
}

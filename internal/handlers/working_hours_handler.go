package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ferrobarbershop/booking-api/internal/audit"
	"github.com/ferrobarbershop/booking-api/internal/domain/schedule"
	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/middleware"
	"github.com/ferrobarbershop/booking-api/internal/models"
	usecase "github.com/ferrobarbershop/booking-api/internal/usecase/booking"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache usecase.SlotCache
}

func NewWorkingHoursHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, cache usecase.SlotCache) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: auditDispatcher, cache: cache}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func barberIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "barber_id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "working_hours_get_failed", "Could not load working hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the barber's whole weekly grid. Every clock field of an
// active day must parse so the availability resolver never sees a half
// written schedule.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if !d.Active {
			continue
		}
		for _, clock := range []string{d.StartTime, d.EndTime} {
			if _, err := schedule.ParseClock(clock); err != nil {
				httperr.BadRequest(c, "invalid_clock", "start_time and end_time must be HH:MM.")
				return
			}
		}
		if d.LunchStart != "" || d.LunchEnd != "" {
			for _, clock := range []string{d.LunchStart, d.LunchEnd} {
				if _, err := schedule.ParseClock(clock); err != nil {
					httperr.BadRequest(c, "invalid_clock", "lunch_start and lunch_end must be HH:MM.")
					return
				}
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.WorkingHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WorkingHours{
				BarberID:   barberID,
				Weekday:    d.Weekday,
				Active:     d.Active,
				StartTime:  d.StartTime,
				EndTime:    d.EndTime,
				LunchStart: d.LunchStart,
				LunchEnd:   d.LunchEnd,
			})
		}

		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		httperr.Internal(c, "working_hours_update_failed", "Could not save working hours.")
		return
	}

	// The grid changed, every cached day for this barber is stale.
	if h.cache != nil {
		ctx := c.Request.Context()
		for i := 0; i < schedule.BookingWindowDays; i++ {
			h.cache.Invalidate(ctx, barberID, timezoneDay(i))
		}
	}

	actorID := c.GetUint(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "working_hours_updated",
		Entity:   "working_hours",
		EntityID: &barberID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	usecase "github.com/ferrobarbershop/booking-api/internal/usecase/booking"
	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/httpresp"
	"github.com/ferrobarbershop/booking-api/internal/models"
	"github.com/ferrobarbershop/booking-api/internal/shopinfo"
)

type PublicHandler struct {
	db            *gorm.DB
	availability  *usecase.GetAvailability
	bookableDates *usecase.GetBookableDates
}

func NewPublicHandler(
	db *gorm.DB,
	availability *usecase.GetAvailability,
	bookableDates *usecase.GetBookableDates,
) *PublicHandler {
	return &PublicHandler{
		db:            db,
		availability:  availability,
		bookableDates: bookableDates,
	}
}

func (h *PublicHandler) GetShop(c *gin.Context) {
	httpresp.OK(c, shopinfo.Current())
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("duration_min ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "services_list_failed", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "barbers_list_failed", "Could not load barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func queryUint(c *gin.Context, key string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_"+key, key+" must be a positive integer.")
		return 0, false
	}
	return uint(v), true
}

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, ok := queryUint(c, "barber_id")
	if !ok {
		return
	}
	serviceID, ok := queryUint(c, "service_id")
	if !ok {
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), usecase.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *PublicHandler) BookableDates(c *gin.Context) {
	barberID, ok := queryUint(c, "barber_id")
	if !ok {
		return
	}
	serviceID, ok := queryUint(c, "service_id")
	if !ok {
		return
	}

	dates, err := h.bookableDates.Execute(c.Request.Context(), barberID, serviceID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, dates)
}

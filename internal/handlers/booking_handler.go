package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	usecase "github.com/ferrobarbershop/booking-api/internal/usecase/booking"
	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/httpresp"
)

type BookingHandler struct {
	create *usecase.CreateBooking
	cancel *usecase.CancelBooking
	list   *usecase.ListUserBookings
}

func NewBookingHandler(
	create *usecase.CreateBooking,
	cancel *usecase.CancelBooking,
	list *usecase.ListUserBookings,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		cancel: cancel,
		list:   list,
	}
}

type CreateBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateBookingInput{
		UserID:    userID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           ap.ID,
		"reference":    ap.Reference,
		"start_time":   ap.StartTime,
		"end_time":     ap.EndTime,
		"duration_min": ap.DurationMin,
		"status":       ap.Status,
	})
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookings, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "bookings_list_failed", "Could not load appointments.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) CancelMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           ap.ID,
		"status":       ap.Status,
		"cancelled_at": ap.CancelledAt,
	})
}

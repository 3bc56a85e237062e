package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ferrobarbershop/booking-api/internal/httperr"
)

var businessMessages = map[string]string{
	"barber_not_found":      "Barber not found.",
	"service_not_found":     "Service not found.",
	"appointment_not_found": "Appointment not found.",
	"invalid_date_or_time":  "Date must be YYYY-MM-DD and time HH:MM.",
	"off_grid_time":         "Appointments start on the half hour.",
	"too_soon":              "This time is too close or already past.",
	"outside_working_hours": "The shop is closed at that time.",
	"time_conflict":         "That time was just booked. Pick another slot.",
	"invalid_state":         "The appointment is not upcoming anymore.",
}

// writeBusinessError maps use case errors onto HTTP statuses. Anything
// that is not a business error is a 500.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		if httperr.IsExclusionConflict(err) {
			httperr.Conflict(c, "time_conflict", businessMessages["time_conflict"])
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg := businessMessages[be.Code]

	switch be.Code {
	case "barber_not_found", "service_not_found", "appointment_not_found":
		httperr.NotFound(c, be.Code, msg)
	case "time_conflict", "invalid_state":
		httperr.Conflict(c, be.Code, msg)
	default:
		httperr.BadRequest(c, be.Code, msg)
	}
}

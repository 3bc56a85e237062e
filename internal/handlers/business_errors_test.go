package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ferrobarbershop/booking-api/internal/httperr"
)

func TestWriteBusinessError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		code   string
		status int
	}{
		{"barber_not_found", http.StatusNotFound},
		{"service_not_found", http.StatusNotFound},
		{"appointment_not_found", http.StatusNotFound},
		{"time_conflict", http.StatusConflict},
		{"invalid_state", http.StatusConflict},
		{"too_soon", http.StatusBadRequest},
		{"off_grid_time", http.StatusBadRequest},
		{"outside_working_hours", http.StatusBadRequest},
		{"invalid_date_or_time", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeBusinessError(c, httperr.ErrBusiness(tt.code))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestWriteBusinessErrorUnknown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeBusinessError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

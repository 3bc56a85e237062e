package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/models"
)

func TestCancelUpcoming(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusUpcoming)}

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCompleteUpcoming(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusUpcoming)}

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
}

func TestInvalidTransitions(t *testing.T) {
	now := time.Now()

	for _, from := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(from)}
		err := Cancel(ap, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "cancel from %s", from)

		ap = &models.Appointment{Status: string(from)}
		err = Complete(ap, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "complete from %s", from)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusUpcoming, InitialStatus())
}

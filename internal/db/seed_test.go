package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekTemplate(t *testing.T) {
	week := weekTemplate(3)
	require.Len(t, week, 7)

	seen := map[int]bool{}
	for _, wh := range week {
		assert.Equal(t, uint(3), wh.BarberID)
		assert.False(t, seen[wh.Weekday], "weekday %d appears twice", wh.Weekday)
		seen[wh.Weekday] = true
	}

	// Sunday and Monday keep their own rows, closed.
	assert.False(t, week[0].Active)
	assert.Equal(t, 0, week[0].Weekday)
	assert.False(t, week[1].Active)
	assert.Equal(t, 1, week[1].Weekday)

	for wd := 2; wd <= 6; wd++ {
		assert.True(t, week[wd].Active)
		assert.Equal(t, "19:30", week[wd].EndTime)
		assert.Equal(t, "12:30", week[wd].LunchStart)
		assert.Equal(t, "14:00", week[wd].LunchEnd)
	}

	assert.Equal(t, "09:00", week[2].StartTime)
	assert.Equal(t, "09:30", week[4].StartTime)
	assert.Equal(t, "09:00", week[5].StartTime)
	assert.Equal(t, "09:30", week[6].StartTime)
}

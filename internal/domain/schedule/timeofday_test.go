package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "12:30", want: 750},
		{in: "19:30", want: 1170},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "9:0", wantErr: true},
		{in: "09-00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "0900", wantErr: true},
		{in: "09:000", wantErr: true},
		{in: "", wantErr: true},
		{in: "garbage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:00", TimeOfDay(540).String())
	assert.Equal(t, "19:30", TimeOfDay(1170).String())
	assert.Equal(t, "00:05", TimeOfDay(5).String())
}

func TestMustClockPanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { MustClock("25:00") })
}

func TestClockOf(t *testing.T) {
	at := time.Date(2026, 9, 1, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeOfDay(845), ClockOf(at))
}

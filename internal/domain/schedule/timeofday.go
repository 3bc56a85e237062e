package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time expressed as minutes since midnight, in [0, 1440).
type TimeOfDay int

const MinutesPerDay = 24 * 60

// ParseClock parses a strict "HH:MM" clock string. Malformed input is a
// programmer error upstream, so it is reported loudly instead of defaulted.
// The shape is checked first: time.Parse alone would accept a non-padded
// hour like "9:00".
func ParseClock(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("schedule: invalid clock time %q: want HH:MM", s)
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("schedule: invalid clock time %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// MustClock is ParseClock for hard-coded values (seeds, tests).
func MustClock(s string) TimeOfDay {
	t, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ClockOf projects a wall-clock instant onto its minute of the day.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

package schedule

import "time"

const (
	// GridStepMinutes is the spacing of candidate start times.
	GridStepMinutes = 30

	// SameDayLeadMinutes blocks same-day slots starting within the next hour.
	SameDayLeadMinutes = 60

	// BookingWindowDays is the rolling window offered for new bookings,
	// starting today.
	BookingWindowDays = 15
)

// DaySchedule is one barber's published hours for a single weekday.
type DaySchedule struct {
	Closed   bool
	OpensAt  TimeOfDay
	ClosesAt TimeOfDay

	// Lunch window; ignored unless LunchStart < LunchEnd.
	LunchStart TimeOfDay
	LunchEnd   TimeOfDay
}

func (d DaySchedule) hasLunch() bool {
	return d.LunchStart < d.LunchEnd
}

// Allows reports whether the half-open range [start, end) fits entirely
// inside working hours without touching the lunch window.
func (d DaySchedule) Allows(start, end TimeOfDay) bool {
	if d.Closed || start < d.OpensAt || end > d.ClosesAt {
		return false
	}
	if d.hasLunch() && Overlaps(start, end, d.LunchStart, d.LunchEnd) {
		return false
	}
	return true
}

// BookedRange is a read projection of an upcoming appointment: where it
// starts and how long it runs. The duration is the one stored on the
// appointment at creation, never re-derived from a service name.
type BookedRange struct {
	Start       TimeOfDay
	DurationMin int
}

func (b BookedRange) End() TimeOfDay {
	return b.Start + TimeOfDay(b.DurationMin)
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one instant.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && aEnd > bStart
}

// Slot is a candidate start time on the grid with its verdict.
type Slot struct {
	Start   TimeOfDay
	Verdict Verdict
}

func (s Slot) Open() bool {
	return s.Verdict == VerdictOpen
}

// AvailableTimes walks the 30-minute grid of a day and classifies every
// candidate start for a service of durationMin minutes.
//
// The function is pure: booked slots and the current clock are injected,
// nothing is read from the environment, and identical inputs always yield
// identical output. Grid times whose range would cross the lunch window are
// omitted entirely; they were never part of the published grid.
func AvailableTimes(day DaySchedule, durationMin int, booked []BookedRange, sameDay bool, now TimeOfDay) []Slot {
	if day.Closed || durationMin <= 0 || day.OpensAt >= day.ClosesAt {
		return nil
	}

	var slots []Slot
	for start := day.OpensAt; start < day.ClosesAt; start += GridStepMinutes {
		end := start + TimeOfDay(durationMin)

		if day.hasLunch() && Overlaps(start, end, day.LunchStart, day.LunchEnd) {
			continue
		}

		verdict := VerdictOpen
		switch {
		case end > day.ClosesAt:
			// Checked before overlap: a slot can be infeasible even with
			// no booking in the way. Ending exactly at closing is allowed.
			verdict = VerdictPastClosing
		case sameDay && start <= now+SameDayLeadMinutes:
			verdict = VerdictTooSoon
		default:
			for _, b := range booked {
				if Overlaps(start, end, b.Start, b.End()) {
					verdict = VerdictTaken
					break
				}
			}
		}

		slots = append(slots, Slot{Start: start, Verdict: verdict})
	}

	return slots
}

// OpenCount counts slots with an open verdict.
func OpenCount(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if s.Open() {
			n++
		}
	}
	return n
}

// DateOption is a calendar date inside the booking window together with how
// many open slots it still has.
type DateOption struct {
	Date      time.Time
	OpenSlots int
}

// WeekSchedule resolves the published hours for a weekday.
type WeekSchedule func(time.Weekday) DaySchedule

// DateKey is the canonical form used to group booked ranges per day.
const DateKey = "2006-01-02"

// BookableDates reports, for the rolling booking window starting today,
// every date a client may pick. Weekly closed days are skipped. A future
// date with zero open slots is still reported (callers render it as full);
// today is omitted entirely once the lead-time rule leaves nothing open.
func BookableDates(week WeekSchedule, durationMin int, bookedByDate map[string][]BookedRange, now time.Time) []DateOption {
	var out []DateOption

	for i := 0; i < BookingWindowDays; i++ {
		date := now.AddDate(0, 0, i)
		day := week(date.Weekday())
		if day.Closed {
			continue
		}

		slots := AvailableTimes(
			day,
			durationMin,
			bookedByDate[date.Format(DateKey)],
			i == 0,
			ClockOf(now),
		)

		open := OpenCount(slots)
		if i == 0 && open == 0 {
			continue
		}

		out = append(out, DateOption{Date: date, OpenSlots: open})
	}

	return out
}

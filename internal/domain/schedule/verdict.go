package schedule

// Verdict classifies why a grid slot is or is not bookable. Verdicts are
// recomputed on every query and never persisted.
type Verdict string

const (
	// VerdictOpen means the slot can be booked.
	VerdictOpen Verdict = "open"

	// VerdictTaken means the candidate range overlaps an upcoming booking.
	VerdictTaken Verdict = "taken"

	// VerdictPastClosing means the service would run past closing time.
	VerdictPastClosing Verdict = "past_closing"

	// VerdictTooSoon means the slot starts within the same-day lead window
	// (or is already in the past).
	VerdictTooSoon Verdict = "too_soon"
)

package booking

import "context"

// SlotCache memoizes computed availability per barber, date and service
// duration. Implementations must be safe to call from concurrent requests;
// a nil cache disables memoization.
type SlotCache interface {
	Get(ctx context.Context, barberID uint, date string, durationMin int) ([]byte, bool)
	Put(ctx context.Context, barberID uint, date string, durationMin int, payload []byte)
	Invalidate(ctx context.Context, barberID uint, date string)
}

package timezone

import "time"

// The shop operates on its local wall clock; all dates and clock times in
// the API are interpreted in this zone.
const ShopTimezone = "Europe/Rome"

func Location() *time.Location {
	loc, err := time.LoadLocation(ShopTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

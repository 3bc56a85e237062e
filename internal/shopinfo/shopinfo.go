package shopinfo

// Shop is the single-location identity served on the public endpoint.
// Hours here are display strings; the bookable schedule lives in the
// working_hours table.
type Shop struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	City     string   `json:"city"`
	Phones   []string `json:"phones"`
	Timezone string   `json:"timezone"`
	Hours    []DayRow `json:"hours"`
}

type DayRow struct {
	Days  string `json:"days"`
	Open  string `json:"open"`
	Close string `json:"close"`
	Lunch string `json:"lunch,omitempty"`
}

func Current() Shop {
	return Shop{
		Name:     "Ferro Barber Shop",
		Address:  "Via Tiburtina 137/139",
		City:     "00185 Roma",
		Phones:   []string{"+39 329 206 9578", "+39 06 8923 5068"},
		Timezone: "Europe/Rome",
		Hours: []DayRow{
			{Days: "Tue, Wed, Fri", Open: "09:00", Close: "19:30", Lunch: "12:30-14:00"},
			{Days: "Thu, Sat", Open: "09:30", Close: "19:30", Lunch: "12:30-14:00"},
			{Days: "Sun, Mon", Open: "", Close: ""},
		},
	}
}

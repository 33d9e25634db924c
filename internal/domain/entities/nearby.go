package entities

import "time"

const (
	// DayToday selects the current server-local day
	DayToday = "today"
	// DayTomorrow selects the day after the current server-local day
	DayTomorrow = "tomorrow"
)

// NearbyQuery is a validated inbound search
type NearbyQuery struct {
	Origin Coordinates
	Day    string
	// Weekday is the resolved target day the opening-hours filter runs against
	Weekday time.Weekday
}

// NearbyResponse is the body returned for a successful search
type NearbyResponse struct {
	Day   string       `json:"day"`
	Count int          `json:"count"`
	Items []ResultItem `json:"items"`
}

// ResolveWeekday maps a day selector onto a weekday relative to now.
// Anything other than "tomorrow" resolves to today.
func ResolveWeekday(day string, now time.Time) time.Weekday {
	if day == DayTomorrow {
		now = now.AddDate(0, 0, 1)
	}
	return now.Weekday()
}

package timezone

import "time"

// DefaultTimezone is the clinic's wall-clock zone, used when formatting
// times for clients.
const DefaultTimezone = "America/Sao_Paulo"

// Location resolves tz, falling back to the clinic default when the name
// is empty or unknown.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// StartOfDayUTC truncates t to midnight of its UTC calendar day. The slot
// engine iterates days in UTC regardless of the caller's location.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDayUTC reports whether a and b fall on the same UTC calendar day.
// Holiday matching is a calendar-day comparison, not timestamp equality.
func SameDayUTC(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month() && au.Day() == bu.Day()
}

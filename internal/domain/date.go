package domain

import "time"

// CalendarDaysBetween returns the number of calendar days from a to b,
// positive when b is later. Time of day is ignored: practicing at 23:59 and
// again at 00:01 counts as a one-day gap. a is converted to b's location
// before truncation.
func CalendarDaysBetween(a, b time.Time) int {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	// Midnights in UTC are exact 24h multiples apart, unlike local
	// midnights across DST transitions.
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// SameCalendarDay reports whether a and b fall on the same calendar day in
// b's location.
func SameCalendarDay(a, b time.Time) bool {
	return CalendarDaysBetween(a, b) == 0
}

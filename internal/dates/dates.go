// Package dates holds the calendar-day helpers shared by the review
// scheduler and the streak engine. Everything here works at day
// granularity: two instants on the same calendar day compare equal no
// matter their time-of-day.
package dates

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from earlier to later.
// The result ignores time-of-day: DaysBetween(23:59 Mon, 00:01 Tue) == 1.
// Both days are compared in UTC so DST transitions cannot skew the count.
func DaysBetween(earlier, later time.Time) int {
	ey, em, ed := earlier.Date()
	ly, lm, ld := later.Date()
	from := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	to := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}

// IsToday reports whether t falls on the same calendar day as now.
func IsToday(t, now time.Time) bool {
	return SameDay(t, now)
}

// IsYesterday reports whether t falls on the calendar day before now.
func IsYesterday(t, now time.Time) bool {
	return SameDay(t, StartOfDay(now).AddDate(0, 0, -1))
}

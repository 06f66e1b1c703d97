// Package insights holds the pure date-window and nudge computations. Every
// function takes the reference time explicitly; boundaries are computed in
// the location of that time.
package insights

import "time" // Date arithmetic

// midnight truncates t to the start of its day in t's location
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent Sunday at or before now.
func StartOfWeek(now time.Time) time.Time {
	return midnight(now).AddDate(0, 0, -int(now.Weekday()))
}

// LastWeek returns the seven days before StartOfWeek(now).
func LastWeek(now time.Time) (time.Time, time.Time) {
	start := StartOfWeek(now)
	return start.AddDate(0, 0, -7), start
}

// MonthBounds returns [first day of the month, first day of the next month).
func MonthBounds(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first, first.AddDate(0, 1, 0)
}

// PeriodBounds is MonthBounds for an explicit year and month in loc.
func PeriodBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	return MonthBounds(time.Date(year, month, 1, 0, 0, 0, 0, loc))
}

// DayBounds returns [local midnight, next midnight) around now.
func DayBounds(now time.Time) (time.Time, time.Time) {
	start := midnight(now)
	return start, start.AddDate(0, 0, 1)
}

// LastDays returns the window covering today and the n-1 preceding days.
func LastDays(now time.Time, n int) (time.Time, time.Time) {
	_, end := DayBounds(now)
	return end.AddDate(0, 0, -n), end
}

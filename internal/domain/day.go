package domain

import "time"

// All calendar-day logic works on local wall-clock dates of the salon's
// location, never on UTC dates: an appointment at 00:30 Madrid time belongs
// to that Madrid day even though its UTC instant is on the previous one.

// ParseDay parses "YYYY-MM-DD" as local midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, loc)
}

// StartOfDay returns local midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// NextDay returns local midnight of the following calendar day.
func NextDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, day.Location())
}

// StartOfMonth returns local midnight of the first day of day's month.
func StartOfMonth(day time.Time) time.Time {
	y, m, _ := day.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, day.Location())
}

// SameDay compares Y/M/D of a and b after converting both to loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	y1, m1, d1 := a.In(loc).Date()
	y2, m2, d2 := b.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

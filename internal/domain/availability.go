package domain

import "time"

// UnavailableDate marks one calendar day as not bookable.
// Presence in the ledger means "blocked"; there are no other attributes.
type UnavailableDate struct {
	Date      time.Time
	CreatedAt time.Time
}

// DateRange is an inclusive calendar-day interval, used for calendar rendering.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsValid reports whether the range is ordered.
func (r DateRange) IsValid() bool {
	return !r.From.IsZero() && !r.To.IsZero() && !r.To.Before(r.From)
}

// DayOnly truncates t to day granularity in its location.
func DayOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

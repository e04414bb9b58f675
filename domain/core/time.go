package core

import (
	"time"
)

// DayLayout is the canonical calendar-day key format used across the
// trend reconciler and the response repositories.
const DayLayout = "2006-01-02"

// DayKey formats a timestamp as its UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// MidnightUTC truncates a time to UTC midnight of the same calendar day.
func MidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

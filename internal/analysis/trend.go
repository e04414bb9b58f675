package analysis

import (
	"time"

	"angket/domain/analytics"
	"angket/domain/core"
)

const (
	minTrendDays     = 7
	maxTrendDays     = 365
	defaultTrendDays = 30
)

// Trend converts a sparse day->count map into a dense, gap-free daily
// series over a clamped calendar window ending today. See reconcile for
// the window rules.
func Trend(sparse map[string]int, days int, from, to *time.Time) []analytics.TrendPoint {
	return reconcile(time.Now(), sparse, days, from, to)
}

// reconcile walks every calendar day of the effective window and emits one
// point per day, zero-filled where the sparse map has no entry.
//
// The window start is the later of (today - (days-1)) and the optional
// from date: an explicit from can narrow the window forward but never
// extend it past the day budget. An explicit to is an exclusive upper
// bound, so the last included day is to minus one day; without it the
// window ends today.
func reconcile(now time.Time, sparse map[string]int, days int, from, to *time.Time) []analytics.TrendPoint {
	if days <= 0 {
		days = defaultTrendDays
	}
	if days < minTrendDays {
		days = minTrendDays
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}

	today := core.MidnightUTC(now)
	start := today.AddDate(0, 0, -(days - 1))
	if from != nil {
		if f := core.MidnightUTC(*from); f.After(start) {
			start = f
		}
	}

	end := today
	if to != nil {
		end = core.MidnightUTC(*to).AddDate(0, 0, -1)
	}

	points := make([]analytics.TrendPoint, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := core.DayKey(d)
		points = append(points, analytics.TrendPoint{Day: key, Total: sparse[key]})
	}
	return points
}

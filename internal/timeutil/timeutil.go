// Package timeutil provides timezone-aware local-time extraction. Every
// conversion takes an explicit *time.Location; the process-local zone is
// never consulted.
package timeutil

import "time"

// Resolve looks up an IANA timezone name. When resolution fails it returns
// UTC together with fallback=true so that clock display degrades instead of
// crashing; callers decide whether to log the fallback.
func Resolve(name string) (loc *time.Location, fallback bool) {
	if name == "" {
		return time.UTC, true
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, true
	}
	return loc, false
}

// LocalClock returns the wall-clock hour (0-23) and minute (0-59) of t in loc.
func LocalClock(t time.Time, loc *time.Location) (hour, minute int) {
	lt := t.In(loc)
	return lt.Hour(), lt.Minute()
}

// DateKey returns the local calendar date of t in loc as YYYY-MM-DD.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// SameLocalDay reports whether a and b fall on the same calendar date in loc.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns local midnight of t's calendar date in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns Monday 00:00 of t's local week in loc.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	sinceMonday := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		sinceMonday = 6
	}
	return day.AddDate(0, 0, -sinceMonday)
}

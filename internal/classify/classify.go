// Package classify buckets appointments into the operational categories the
// dashboard is organized around and selects the next active appointment.
package classify

import (
	"sort"
	"time"

	"schedgrid/internal/model"
	"schedgrid/internal/timeutil"
)

// Bucket names an operational category of appointments.
type Bucket string

const (
	BucketToday       Bucket = "today"
	BucketTomorrow    Bucket = "tomorrow"
	BucketThisWeek    Bucket = "this_week"
	BucketUpcoming    Bucket = "upcoming"
	BucketNext2h      Bucket = "next_2h"
	BucketNeedsAction Bucket = "needs_action"
	BucketCancelled   Bucket = "cancelled"
	BucketHistory     Bucket = "history"
)

// Buckets is the display order consumers iterate in.
var Buckets = []Bucket{
	BucketNext2h,
	BucketToday,
	BucketTomorrow,
	BucketThisWeek,
	BucketUpcoming,
	BucketNeedsAction,
	BucketCancelled,
	BucketHistory,
}

// isHistory reports whether an appointment reads as "what happened" rather
// than "what's next": already over, or terminally completed/cancelled.
func isHistory(a model.Appointment, now time.Time) bool {
	return a.Interval.End.Before(now) ||
		a.Status == model.StatusCompleted ||
		a.Status == model.StatusCancelled
}

// Classify buckets appointments by the categories above. Buckets may
// overlap (a cancelled appointment appears under both cancelled and
// history) and an appointment with no matching bucket does not happen:
// everything is either history or lands in at least one forward bucket.
//
// Every bucket is sorted ascending by start (soonest first) except history,
// which is descending (most recent first). That asymmetry is intentional:
// it matches "what's next" versus "what happened" reading order.
func Classify(appts []model.Appointment, now time.Time, loc *time.Location) map[Bucket][]model.Appointment {
	todayKey := timeutil.DateKey(now, loc)
	tomorrowKey := timeutil.DateKey(timeutil.StartOfDay(now, loc).AddDate(0, 0, 1), loc)
	weekStart := timeutil.StartOfWeek(now, loc)
	weekEnd := weekStart.AddDate(0, 0, 7)
	soonCutoff := now.Add(2 * time.Hour)

	out := make(map[Bucket][]model.Appointment)
	add := func(b Bucket, a model.Appointment) {
		out[b] = append(out[b], a)
	}

	for _, a := range appts {
		start, end := a.Interval.Start, a.Interval.End
		history := isHistory(a, now)

		if history {
			add(BucketHistory, a)
		}
		if a.Status == model.StatusCancelled {
			add(BucketCancelled, a)
		}
		if a.Status == model.StatusPending || a.Status == model.StatusNoShow {
			if !end.Before(now) {
				add(BucketNeedsAction, a)
			}
		}
		if history {
			continue
		}

		startKey := timeutil.DateKey(start, loc)
		if startKey == todayKey {
			add(BucketToday, a)
		}
		if startKey == tomorrowKey {
			add(BucketTomorrow, a)
		}
		if !start.Before(weekStart) && start.Before(weekEnd) {
			add(BucketThisWeek, a)
		}
		if start.After(now) && a.Status.Active() {
			add(BucketUpcoming, a)
			if !start.After(soonCutoff) {
				add(BucketNext2h, a)
			}
		}
	}

	for b, list := range out {
		desc := b == BucketHistory
		sort.SliceStable(list, func(i, j int) bool {
			if desc {
				return list[i].Interval.Start.After(list[j].Interval.Start)
			}
			return list[i].Interval.Start.Before(list[j].Interval.Start)
		})
		out[b] = list
	}
	return out
}

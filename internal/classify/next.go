package classify

import (
	"time"

	"schedgrid/internal/model"
)

// SelectNext returns the earliest appointment starting strictly after now
// whose status is confirmed, scheduled, or pending. Ties keep the first in
// input order. A nil result is the valid "no upcoming appointment" state,
// not an error.
func SelectNext(appts []model.Appointment, now time.Time) *model.Appointment {
	var next *model.Appointment
	for i := range appts {
		a := &appts[i]
		switch a.Status {
		case model.StatusConfirmed, model.StatusScheduled, model.StatusPending:
		default:
			continue
		}
		if !a.Interval.Start.After(now) {
			continue
		}
		if next == nil || a.Interval.Start.Before(next.Interval.Start) {
			next = a
		}
	}
	if next == nil {
		return nil
	}
	picked := *next
	return &picked
}

// Package live derives the time-dependent pieces of the schedule view: the
// now-line position and the countdown to the next appointment. It owns no
// appointment data and never self-schedules; callers re-invoke Snapshot on
// their own cadence (a ticker around 30-60s is enough, the smallest
// displayed unit is minutes).
package live

import (
	"time"

	"schedgrid/internal/classify"
	"schedgrid/internal/grid"
	"schedgrid/internal/model"
)

// Clock supplies current time. Injecting it keeps the indicator free of
// ambient mutable state and makes snapshots reproducible in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Indicator recomputes the live schedule markers for one grid view.
type Indicator struct {
	Window  grid.Window
	Density grid.Density
	Loc     *time.Location
	Clock   Clock
}

// Snapshot is one recomputation of the live markers. NowLine is nil when
// the current time falls outside the grid window; Next is nil and Countdown
// empty when no upcoming appointment exists.
type Snapshot struct {
	At        time.Time          `json:"at"`
	NowLine   *grid.Rect         `json:"now_line,omitempty"`
	Next      *model.Appointment `json:"next,omitempty"`
	Countdown string             `json:"countdown,omitempty"`
}

// Snapshot computes the current markers against the given appointments.
func (ind Indicator) Snapshot(appts []model.Appointment) Snapshot {
	now := ind.Clock.Now()
	snap := Snapshot{
		At:      now,
		NowLine: grid.NowLine(now, ind.Window, ind.Loc, ind.Density),
	}
	if next := classify.SelectNext(appts, now); next != nil {
		snap.Next = next
		snap.Countdown = classify.Countdown(now, next.Interval.Start, ind.Loc)
	}
	return snap
}

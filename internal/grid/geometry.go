// Package grid maps instants and intervals onto a bounded day grid: discrete
// slot indexes and abstract-unit rectangles. All functions are pure; the
// caller supplies the timezone every local projection goes through.
package grid

import (
	"time"

	"schedgrid/internal/model"
	"schedgrid/internal/timeutil"
)

// Rect is the engine's geometric output for an interval: a vertical offset
// and extent in abstract units (pixels or rows, per the density).
type Rect struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// SlotOf returns the slot index the instant falls into under w. Out-of-range
// results (negative or >= TotalSlots) are valid outputs; callers clip them.
func SlotOf(t time.Time, w Window, loc *time.Location) int {
	h, m := timeutil.LocalClock(t, loc)
	return (h-w.StartHour)*w.SlotsPerHour() + m/w.SlotMinutes
}

// minuteOffset returns the wall-clock offset of t from the window's opening
// hour, in minutes. Negative before opening, beyond TotalMinutes after close.
func minuteOffset(t time.Time, w Window, loc *time.Location) int {
	h, m := timeutil.LocalClock(t, loc)
	return (h-w.StartHour)*60 + m
}

// ClampedSpan clamps iv to the window in local wall-clock minutes and
// returns the covered span as minute offsets from the opening hour. An end
// falling on a later local day than the start clamps to the window end (the
// provider day-splits; day-crossing input is clamped, not rejected). ok is
// false when nothing of the interval remains inside the window.
func ClampedSpan(iv model.Interval, w Window, loc *time.Location) (startMin, endMin int, ok bool) {
	startMin = minuteOffset(iv.Start, w, loc)
	if !timeutil.SameLocalDay(iv.Start, iv.End, loc) {
		endMin = w.TotalMinutes()
	} else {
		endMin = minuteOffset(iv.End, w, loc)
	}
	if startMin < 0 {
		startMin = 0
	}
	if endMin > w.TotalMinutes() {
		endMin = w.TotalMinutes()
	}
	if endMin <= startMin {
		return 0, 0, false
	}
	return startMin, endMin, true
}

// Project computes the rectangle for iv inside w at density d, or nil when
// the interval is empty after clamping (entirely outside the window —
// render nothing). No minimum-height inflation happens here: segments must
// never lie about their duration, and booking inflation belongs to the
// placer.
func Project(iv model.Interval, w Window, loc *time.Location, d Density) *Rect {
	startMin, endMin, ok := ClampedSpan(iv, w, loc)
	if !ok {
		return nil
	}
	unit := d.SlotHeight / float64(w.SlotMinutes)
	return &Rect{
		Top:    float64(startMin) * unit,
		Height: float64(endMin-startMin) * unit,
	}
}

// NowLine returns a zero-height rect at the current time's vertical offset,
// or nil when now is outside the window (no line drawn).
func NowLine(now time.Time, w Window, loc *time.Location, d Density) *Rect {
	offset := minuteOffset(now, w, loc)
	if offset < 0 || offset >= w.TotalMinutes() {
		return nil
	}
	unit := d.SlotHeight / float64(w.SlotMinutes)
	return &Rect{Top: float64(offset) * unit, Height: 0}
}

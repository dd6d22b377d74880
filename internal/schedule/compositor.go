// Package schedule turns one resource's raw day records into render-ready
// layers: a per-slot background composed from availability segments, and
// positioned cards for bookings.
package schedule

import (
	"time"

	"schedgrid/internal/grid"
	"schedgrid/internal/model"
)

// slotSpan returns the half-open slot range [first, lastEx) touched by the
// interval under w, clipped to the window. Coverage is right-open
// throughout: an interval ending exactly on a slot boundary does not touch
// the slot past the boundary.
func slotSpan(iv model.Interval, w grid.Window, loc *time.Location) (first, lastEx int, ok bool) {
	startMin, endMin, ok := grid.ClampedSpan(iv, w, loc)
	if !ok {
		return 0, 0, false
	}
	first = startMin / w.SlotMinutes
	lastEx = (endMin + w.SlotMinutes - 1) / w.SlotMinutes
	if lastEx > w.TotalSlots() {
		lastEx = w.TotalSlots()
	}
	if first >= lastEx {
		return 0, 0, false
	}
	return first, lastEx, true
}

// Composite merges one resource's non-booking segments for one day into a
// single background layer: a winning kind per touched slot.
//
// Precedence is a product decision, not an accident: closed and break are
// dominant and always win a slot they touch, because they communicate hard
// unavailability and must never be hidden behind a softer state. All other
// kinds are first-write-wins in input order. The two passes make the rule
// auditable instead of encoding it in iteration order; where both dominant
// kinds touch one slot, closed outranks break.
//
// A segment whose clamped interval yields zero slots contributes nothing
// (e.g. a break entirely before opening time); that is normal, not an error.
func Composite(segments []model.Segment, w grid.Window, loc *time.Location) map[int]model.SegmentKind {
	out := make(map[int]model.SegmentKind)

	for _, s := range segments {
		if s.Kind == model.SegmentBooking || s.Kind.Dominant() {
			continue
		}
		first, lastEx, ok := slotSpan(s.Interval, w, loc)
		if !ok {
			continue
		}
		for i := first; i < lastEx; i++ {
			if _, taken := out[i]; !taken {
				out[i] = s.Kind
			}
		}
	}

	for _, s := range segments {
		if !s.Kind.Dominant() {
			continue
		}
		first, lastEx, ok := slotSpan(s.Interval, w, loc)
		if !ok {
			continue
		}
		for i := first; i < lastEx; i++ {
			if s.Kind == model.SegmentBreak && out[i] == model.SegmentClosed {
				continue
			}
			out[i] = s.Kind
		}
	}

	return out
}

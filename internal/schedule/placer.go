package schedule

import (
	"time"

	"schedgrid/internal/grid"
	"schedgrid/internal/model"
)

// PlacedBooking is one appointment's computed position on the grid.
// StackGroup is the slot index of the clamped start; appointments on the
// same resource sharing a StackGroup render as a vertical stack in the
// compact layout, while the desktop layout positions each card absolutely
// by Rect.
type PlacedBooking struct {
	Appointment model.Appointment `json:"appointment"`
	Rect        grid.Rect         `json:"rect"`
	StackGroup  int               `json:"stack_group"`
}

// PlaceBookings computes the visual rectangle for each appointment, clamped
// to the window; appointments entirely outside the window are dropped.
//
// Height is inflated to d.MinCardHeight so very short appointments stay
// clickable. That is a deliberate readability override of the true
// geometry; any UI relying on it should also show exact times in text.
// Input order is preserved.
func PlaceBookings(appts []model.Appointment, w grid.Window, loc *time.Location, d grid.Density) []PlacedBooking {
	placed := make([]PlacedBooking, 0, len(appts))
	unit := d.SlotHeight / float64(w.SlotMinutes)

	for _, a := range appts {
		startMin, endMin, ok := grid.ClampedSpan(a.Interval, w, loc)
		if !ok {
			continue
		}
		height := float64(endMin-startMin) * unit
		if height < d.MinCardHeight {
			height = d.MinCardHeight
		}
		placed = append(placed, PlacedBooking{
			Appointment: a,
			Rect:        grid.Rect{Top: float64(startMin) * unit, Height: height},
			StackGroup:  startMin / w.SlotMinutes,
		})
	}
	return placed
}

// GroupStacks groups placed bookings by StackGroup for the stacked compact
// layout. Order within each group follows the placed order.
func GroupStacks(placed []PlacedBooking) map[int][]PlacedBooking {
	groups := make(map[int][]PlacedBooking)
	for _, p := range placed {
		groups[p.StackGroup] = append(groups[p.StackGroup], p)
	}
	return groups
}

package grid

import "errors"

// ErrInvalidWindow is returned for a window whose hour range is empty or
// whose slot granularity does not divide an hour evenly.
var ErrInvalidWindow = errors.New("invalid grid window")

// Window is the bounded, visible portion of a day (e.g. 08:00-20:00) laid
// out at a fixed slot granularity. Intervals entirely outside
// [StartHour, EndHour) are not rendered; partial overlaps are clamped.
type Window struct {
	StartHour   int `json:"start_hour"`
	EndHour     int `json:"end_hour"`
	SlotMinutes int `json:"slot_minutes"`
}

// NewWindow validates 0 <= startHour < endHour <= 24 and that slotMinutes
// divides 60 evenly (15/30/60 typical).
func NewWindow(startHour, endHour, slotMinutes int) (Window, error) {
	w := Window{StartHour: startHour, EndHour: endHour, SlotMinutes: slotMinutes}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) Validate() error {
	if w.StartHour < 0 || w.StartHour >= w.EndHour || w.EndHour > 24 {
		return ErrInvalidWindow
	}
	if w.SlotMinutes <= 0 || 60%w.SlotMinutes != 0 {
		return ErrInvalidWindow
	}
	return nil
}

func (w Window) SlotsPerHour() int {
	return 60 / w.SlotMinutes
}

func (w Window) TotalSlots() int {
	return (w.EndHour - w.StartHour) * w.SlotsPerHour()
}

func (w Window) TotalMinutes() int {
	return (w.EndHour - w.StartHour) * 60
}

// Density scales a layout to a device class. It changes pixel scale only,
// never the temporal meaning of a layout.
type Density struct {
	SlotHeight    float64 `json:"slot_height"`
	MinCardHeight float64 `json:"min_card_height"`
}

var (
	DensityDesktop = Density{SlotHeight: 40, MinCardHeight: 20}
	DensityMobile  = Density{SlotHeight: 28, MinCardHeight: 32}
)

package model

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned when an interval's start is not strictly
// before its end. Geometry built on a backwards interval is meaningless,
// so this is rejected at construction and never silently repaired.
var ErrInvalidInterval = errors.New("interval start must be before end")

// Interval is a half-open span of absolute time [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two half-open intervals share any time.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether t falls inside [Start, End).
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

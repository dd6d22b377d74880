package model

// SegmentKind classifies a span of resource availability.
type SegmentKind string

const (
	SegmentWorking   SegmentKind = "working"
	SegmentBreak     SegmentKind = "break"
	SegmentBuffer    SegmentKind = "buffer"
	SegmentClosed    SegmentKind = "closed"
	SegmentTimeBlock SegmentKind = "time_block"
	SegmentBooking   SegmentKind = "booking"
)

// Dominant reports whether this kind always wins a slot over any soft kind,
// regardless of input order. Closed and break communicate hard
// unavailability and must never be visually hidden behind a softer state.
func (k SegmentKind) Dominant() bool {
	return k == SegmentClosed || k == SegmentBreak
}

// Valid reports whether k is one of the known segment kinds.
func (k SegmentKind) Valid() bool {
	switch k {
	case SegmentWorking, SegmentBreak, SegmentBuffer, SegmentClosed, SegmentTimeBlock, SegmentBooking:
		return true
	}
	return false
}

// Segment is a typed interval of availability or unavailability for one
// resource. A segment never spans multiple calendar days in local time;
// the provider is responsible for day-splitting.
type Segment struct {
	ResourceID string      `json:"resource_id"`
	Interval   Interval    `json:"interval"`
	Kind       SegmentKind `json:"kind"`
	Note       string      `json:"note,omitempty"`
}

package model

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Active reports whether the appointment still occupies the schedule
// (not cancelled and not completed).
func (s AppointmentStatus) Active() bool {
	return s != StatusCancelled && s != StatusCompleted
}

// Problem is an upstream-computed annotation on an appointment. The engine
// carries problems through for badge rendering and never branches on them.
type Problem string

const (
	ProblemConflict       Problem = "conflict"
	ProblemUnpaid         Problem = "unpaid"
	ProblemUnconfirmed    Problem = "unconfirmed"
	ProblemMissingContact Problem = "missing_contact"
	ProblemNewCustomer    Problem = "new_customer"
)

// Appointment is one booked service on one resource's schedule.
type Appointment struct {
	ID         string            `json:"id"`
	ResourceID string            `json:"resource_id"`
	Interval   Interval          `json:"interval"`
	Status     AppointmentStatus `json:"status"`
	IsWalkIn   bool              `json:"is_walk_in"`
	Problems   []Problem         `json:"problems,omitempty"`

	// Display fields, shown on cards and in CLI output.
	Customer string `json:"customer,omitempty"`
	Service  string `json:"service,omitempty"`
}

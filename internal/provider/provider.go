// Package provider defines the external collaborators that feed the engine
// and a YAML-backed implementation used by the CLI. The engine places no
// requirements on how implementations fetch or cache data.
package provider

import (
	"time"

	"schedgrid/internal/model"
)

// Resource is one schedulable column of the grid (an employee, a chair, a
// room).
type Resource struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// AvailabilityProvider supplies one resource's non-booking segments for a
// local calendar day. Returned segments never span midnight; providers
// day-split before handing records to the engine.
type AvailabilityProvider interface {
	SegmentsFor(resourceID string, day time.Time) ([]model.Segment, error)
}

// AppointmentProvider supplies one resource's appointments for a local
// calendar day, in stable order.
type AppointmentProvider interface {
	AppointmentsFor(resourceID string, day time.Time) ([]model.Appointment, error)
}

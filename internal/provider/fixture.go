package provider

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"schedgrid/internal/model"
	"schedgrid/internal/timeutil"
)

// File is the on-disk fixture schema: a timezone, the resource list, and
// flat record lists the CLI feeds through the engine.
type File struct {
	Timezone     string              `yaml:"timezone"`
	Resources    []Resource          `yaml:"resources"`
	Segments     []SegmentRecord     `yaml:"segments"`
	Appointments []AppointmentRecord `yaml:"appointments"`
}

type SegmentRecord struct {
	ResourceID string    `yaml:"resource_id"`
	Kind       string    `yaml:"kind"`
	Start      time.Time `yaml:"start"`
	End        time.Time `yaml:"end"`
	Note       string    `yaml:"note,omitempty"`
}

type AppointmentRecord struct {
	ID         string    `yaml:"id"`
	ResourceID string    `yaml:"resource_id"`
	Start      time.Time `yaml:"start"`
	End        time.Time `yaml:"end"`
	Status     string    `yaml:"status"`
	WalkIn     bool      `yaml:"walk_in,omitempty"`
	Problems   []string  `yaml:"problems,omitempty"`
	Customer   string    `yaml:"customer,omitempty"`
	Service    string    `yaml:"service,omitempty"`
}

// Fixture serves segments and appointments from a loaded YAML file. It is
// both the AvailabilityProvider and the AppointmentProvider for the CLI.
type Fixture struct {
	loc       *time.Location
	resources []Resource
	segments  []model.Segment
	appts     []model.Appointment
}

// LoadFixture reads and validates a fixture file. Structurally invalid
// records (unknown kind or status, backwards interval) are skipped with a
// warning rather than failing the whole day. Segments crossing local
// midnight are split at the day boundary here, so the engine only ever sees
// day-local segments.
func LoadFixture(path string, log *zap.Logger) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	loc, fallback := timeutil.Resolve(file.Timezone)
	if fallback {
		log.Warn("timezone fallback to UTC", zap.String("timezone", file.Timezone))
	}

	f := &Fixture{loc: loc, resources: file.Resources}

	for _, rec := range file.Segments {
		kind := model.SegmentKind(rec.Kind)
		if !kind.Valid() || kind == model.SegmentBooking {
			log.Warn("skipping segment with unknown kind",
				zap.String("resource_id", rec.ResourceID), zap.String("kind", rec.Kind))
			continue
		}
		iv, err := model.NewInterval(rec.Start, rec.End)
		if err != nil {
			log.Warn("skipping invalid segment interval",
				zap.String("resource_id", rec.ResourceID), zap.Error(err))
			continue
		}
		for _, part := range splitAtMidnight(iv, loc) {
			f.segments = append(f.segments, model.Segment{
				ResourceID: rec.ResourceID,
				Interval:   part,
				Kind:       kind,
				Note:       rec.Note,
			})
		}
	}

	for _, rec := range file.Appointments {
		status := model.AppointmentStatus(rec.Status)
		if !status.Valid() {
			log.Warn("skipping appointment with unknown status",
				zap.String("id", rec.ID), zap.String("status", rec.Status))
			continue
		}
		iv, err := model.NewInterval(rec.Start, rec.End)
		if err != nil {
			log.Warn("skipping invalid appointment interval",
				zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		problems := make([]model.Problem, 0, len(rec.Problems))
		for _, p := range rec.Problems {
			problems = append(problems, model.Problem(p))
		}
		f.appts = append(f.appts, model.Appointment{
			ID:         rec.ID,
			ResourceID: rec.ResourceID,
			Interval:   iv,
			Status:     status,
			IsWalkIn:   rec.WalkIn,
			Problems:   problems,
			Customer:   rec.Customer,
			Service:    rec.Service,
		})
	}

	return f, nil
}

// splitAtMidnight cuts an interval at each local midnight it crosses, so
// downstream consumers only see day-local spans.
func splitAtMidnight(iv model.Interval, loc *time.Location) []model.Interval {
	var parts []model.Interval
	cur := iv.Start
	for !timeutil.SameLocalDay(cur, iv.End, loc) {
		next := timeutil.StartOfDay(cur, loc).AddDate(0, 0, 1)
		if !next.Before(iv.End) {
			break
		}
		if next.After(cur) {
			parts = append(parts, model.Interval{Start: cur, End: next})
		}
		cur = next
	}
	if cur.Before(iv.End) {
		parts = append(parts, model.Interval{Start: cur, End: iv.End})
	}
	return parts
}

// Location returns the fixture's display timezone.
func (f *Fixture) Location() *time.Location { return f.loc }

// Resources returns the fixture's resource list in file order.
func (f *Fixture) Resources() []Resource { return f.resources }

// SegmentsFor returns the resource's segments whose start falls on the same
// local day as day, in file order.
func (f *Fixture) SegmentsFor(resourceID string, day time.Time) ([]model.Segment, error) {
	var out []model.Segment
	for _, s := range f.segments {
		if s.ResourceID == resourceID && timeutil.SameLocalDay(s.Interval.Start, day, f.loc) {
			out = append(out, s)
		}
	}
	return out, nil
}

// AppointmentsFor returns the resource's appointments whose start falls on
// the same local day as day, in file order.
func (f *Fixture) AppointmentsFor(resourceID string, day time.Time) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range f.appts {
		if a.ResourceID == resourceID && timeutil.SameLocalDay(a.Interval.Start, day, f.loc) {
			out = append(out, a)
		}
	}
	return out, nil
}

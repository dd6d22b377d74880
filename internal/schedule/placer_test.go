package schedule

import (
	"testing"
	"time"

	"schedgrid/internal/model"
)

func appt(id string, startH, startM, endH, endM int, status model.AppointmentStatus) model.Appointment {
	return model.Appointment{
		ID:         id,
		ResourceID: "r1",
		Status:     status,
		Interval:   model.Interval{Start: at(startH, startM), End: at(endH, endM)},
	}
}

func TestPlaceBookings_Geometry(t *testing.T) {
	placed := PlaceBookings([]model.Appointment{
		appt("a", 9, 15, 10, 0, model.StatusConfirmed),
	}, testWindow, time.UTC, testDensity)

	if len(placed) != 1 {
		t.Fatalf("expected 1 placed booking, got %d", len(placed))
	}
	p := placed[0]
	if p.Rect.Top != 100 || p.Rect.Height != 60 {
		t.Fatalf("got top=%v height=%v, want 100/60", p.Rect.Top, p.Rect.Height)
	}
	if p.StackGroup != 2 { // 09:00 slot
		t.Fatalf("stack group = %d, want 2", p.StackGroup)
	}
}

func TestPlaceBookings_MinimumCardHeight(t *testing.T) {
	// A 5-minute appointment renders at the minimum card height so it
	// stays clickable; raw height would be ~6.7.
	placed := PlaceBookings([]model.Appointment{
		appt("a", 8, 0, 8, 5, model.StatusConfirmed),
	}, testWindow, time.UTC, testDensity)

	if len(placed) != 1 {
		t.Fatalf("expected 1 placed booking, got %d", len(placed))
	}
	if placed[0].Rect.Height != testDensity.MinCardHeight {
		t.Fatalf("height = %v, want %v", placed[0].Rect.Height, testDensity.MinCardHeight)
	}
}

func TestPlaceBookings_DropsFullyOutside(t *testing.T) {
	placed := PlaceBookings([]model.Appointment{
		appt("early", 6, 0, 7, 0, model.StatusConfirmed),
		appt("late", 20, 0, 21, 0, model.StatusConfirmed),
		appt("inside", 9, 0, 10, 0, model.StatusConfirmed),
	}, testWindow, time.UTC, testDensity)

	if len(placed) != 1 || placed[0].Appointment.ID != "inside" {
		t.Fatalf("expected only the inside booking, got %+v", placed)
	}
}

func TestPlaceBookings_ClampsToWindow(t *testing.T) {
	placed := PlaceBookings([]model.Appointment{
		appt("a", 7, 0, 9, 0, model.StatusConfirmed),
	}, testWindow, time.UTC, testDensity)

	if len(placed) != 1 {
		t.Fatalf("expected 1 placed booking, got %d", len(placed))
	}
	p := placed[0]
	if p.Rect.Top != 0 || p.Rect.Height != 80 { // 08:00-09:00 survives
		t.Fatalf("got top=%v height=%v, want 0/80", p.Rect.Top, p.Rect.Height)
	}
	if p.StackGroup != 0 {
		t.Fatalf("stack group = %d, want 0", p.StackGroup)
	}
}

func TestPlaceBookings_SharedStartShareStackGroup(t *testing.T) {
	placed := PlaceBookings([]model.Appointment{
		appt("a", 10, 0, 10, 30, model.StatusConfirmed),
		appt("b", 10, 0, 11, 0, model.StatusScheduled),
		appt("c", 11, 0, 12, 0, model.StatusConfirmed),
	}, testWindow, time.UTC, testDensity)

	if len(placed) != 3 {
		t.Fatalf("expected 3 placed bookings, got %d", len(placed))
	}
	if placed[0].StackGroup != placed[1].StackGroup {
		t.Fatalf("expected shared stack group, got %d and %d",
			placed[0].StackGroup, placed[1].StackGroup)
	}
	if placed[2].StackGroup == placed[0].StackGroup {
		t.Fatal("11:00 booking must not share the 10:00 stack group")
	}

	stacks := GroupStacks(placed)
	group := stacks[placed[0].StackGroup]
	if len(group) != 2 {
		t.Fatalf("expected 2 members in the 10:00 stack, got %d", len(group))
	}
	if group[0].Appointment.ID != "a" || group[1].Appointment.ID != "b" {
		t.Fatalf("stack order must follow input order, got %s,%s",
			group[0].Appointment.ID, group[1].Appointment.ID)
	}
}

func TestPlaceBookings_PreservesInputOrder(t *testing.T) {
	placed := PlaceBookings([]model.Appointment{
		appt("later", 15, 0, 16, 0, model.StatusConfirmed),
		appt("earlier", 9, 0, 10, 0, model.StatusConfirmed),
	}, testWindow, time.UTC, testDensity)

	if placed[0].Appointment.ID != "later" || placed[1].Appointment.ID != "earlier" {
		t.Fatal("placer must not reorder input")
	}
}

package schedule

import (
	"testing"
	"time"

	"schedgrid/internal/grid"
	"schedgrid/internal/model"
)

var (
	testWindow  = grid.Window{StartHour: 8, EndHour: 20, SlotMinutes: 30}
	testDensity = grid.Density{SlotHeight: 40, MinCardHeight: 20}
)

func at(h, m int) time.Time {
	return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC)
}

func seg(kind model.SegmentKind, startH, startM, endH, endM int) model.Segment {
	return model.Segment{
		ResourceID: "r1",
		Kind:       kind,
		Interval:   model.Interval{Start: at(startH, startM), End: at(endH, endM)},
	}
}

func TestComposite_DominantBreakWins(t *testing.T) {
	// working supplied first still loses the 12:00 slot to the break.
	segs := []model.Segment{
		seg(model.SegmentWorking, 9, 0, 17, 0),
		seg(model.SegmentBreak, 12, 0, 12, 30),
	}
	out := Composite(segs, testWindow, time.UTC)

	noon := grid.SlotOf(at(12, 0), testWindow, time.UTC)
	if out[noon] != model.SegmentBreak {
		t.Fatalf("slot %d = %s, want break", noon, out[noon])
	}
	// Right-open: a break ending exactly at 12:30 does not claim the
	// 12:30 slot.
	if out[noon+1] != model.SegmentWorking {
		t.Fatalf("slot %d = %s, want working", noon+1, out[noon+1])
	}
}

func TestComposite_DominantOrderIndependent(t *testing.T) {
	forward := []model.Segment{
		seg(model.SegmentWorking, 9, 0, 17, 0),
		seg(model.SegmentBreak, 12, 0, 12, 30),
		seg(model.SegmentClosed, 15, 0, 16, 0),
	}
	reversed := []model.Segment{forward[2], forward[1], forward[0]}

	a := Composite(forward, testWindow, time.UTC)
	b := Composite(reversed, testWindow, time.UTC)

	for slot, kind := range a {
		if !kind.Dominant() {
			continue
		}
		if b[slot] != kind {
			t.Fatalf("slot %d: %s vs %s after permutation", slot, kind, b[slot])
		}
	}
}

func TestComposite_ClosedOutranksBreak(t *testing.T) {
	segs := []model.Segment{
		seg(model.SegmentBreak, 14, 0, 15, 0),
		seg(model.SegmentClosed, 14, 0, 15, 0),
	}
	slot := grid.SlotOf(at(14, 0), testWindow, time.UTC)

	for _, input := range [][]model.Segment{segs, {segs[1], segs[0]}} {
		out := Composite(input, testWindow, time.UTC)
		if out[slot] != model.SegmentClosed {
			t.Fatalf("slot %d = %s, want closed", slot, out[slot])
		}
	}
}

func TestComposite_SoftKindsFirstWriteWins(t *testing.T) {
	buffer := seg(model.SegmentBuffer, 9, 0, 10, 0)
	block := seg(model.SegmentTimeBlock, 9, 0, 10, 0)
	slot := grid.SlotOf(at(9, 0), testWindow, time.UTC)

	out := Composite([]model.Segment{buffer, block}, testWindow, time.UTC)
	if out[slot] != model.SegmentBuffer {
		t.Fatalf("slot %d = %s, want buffer", slot, out[slot])
	}
	out = Composite([]model.Segment{block, buffer}, testWindow, time.UTC)
	if out[slot] != model.SegmentTimeBlock {
		t.Fatalf("slot %d = %s, want time_block", slot, out[slot])
	}
}

func TestComposite_ZeroSlotSegmentContributesNothing(t *testing.T) {
	// A break entirely before opening is normal, not an error.
	segs := []model.Segment{
		seg(model.SegmentBreak, 6, 0, 6, 30),
		seg(model.SegmentWorking, 9, 0, 10, 0),
	}
	out := Composite(segs, testWindow, time.UTC)
	if len(out) != 2 {
		t.Fatalf("expected 2 covered slots, got %d", len(out))
	}
	for slot, kind := range out {
		if kind != model.SegmentWorking {
			t.Fatalf("slot %d = %s, want working", slot, kind)
		}
	}
}

func TestComposite_IgnoresBookingSegments(t *testing.T) {
	segs := []model.Segment{
		seg(model.SegmentBooking, 9, 0, 10, 0),
	}
	out := Composite(segs, testWindow, time.UTC)
	if len(out) != 0 {
		t.Fatalf("expected empty composite, got %v", out)
	}
}

func TestComposite_CoversOnlyTouchedSlots(t *testing.T) {
	segs := []model.Segment{
		seg(model.SegmentWorking, 9, 0, 11, 0),
	}
	out := Composite(segs, testWindow, time.UTC)
	if len(out) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(out))
	}
	first := grid.SlotOf(at(9, 0), testWindow, time.UTC)
	for i := first; i < first+4; i++ {
		if out[i] != model.SegmentWorking {
			t.Fatalf("slot %d missing", i)
		}
	}
}

func TestComposite_PartialSlotTouchClaimsSlot(t *testing.T) {
	// A segment covering any part of a slot claims it: 09:10-09:20 sits
	// inside the 09:00 slot.
	segs := []model.Segment{
		seg(model.SegmentTimeBlock, 9, 10, 9, 20),
	}
	out := Composite(segs, testWindow, time.UTC)
	slot := grid.SlotOf(at(9, 0), testWindow, time.UTC)
	if out[slot] != model.SegmentTimeBlock {
		t.Fatalf("slot %d = %s, want time_block", slot, out[slot])
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(out))
	}
}

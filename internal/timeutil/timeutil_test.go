package timeutil

import (
	"testing"
	"time"
)

func TestResolve_FallbackToUTC(t *testing.T) {
	loc, fallback := Resolve("Not/AZone")
	if !fallback {
		t.Fatal("expected fallback for unknown zone")
	}
	if loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}

	if _, fallback := Resolve(""); !fallback {
		t.Fatal("expected fallback for empty zone")
	}

	loc, fallback = Resolve("America/New_York")
	if fallback {
		t.Fatal("unexpected fallback for valid zone")
	}
	if loc.String() != "America/New_York" {
		t.Fatalf("unexpected zone %v", loc)
	}
}

func TestLocalClock_UsesStatedZone(t *testing.T) {
	ny, _ := Resolve("America/New_York")
	// 15:30 UTC is 10:30 in New York in January (EST).
	at := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)

	h, m := LocalClock(at, ny)
	if h != 10 || m != 30 {
		t.Fatalf("expected 10:30, got %02d:%02d", h, m)
	}
	h, m = LocalClock(at, time.UTC)
	if h != 15 || m != 30 {
		t.Fatalf("expected 15:30, got %02d:%02d", h, m)
	}
}

func TestDateKey_CrossesMidnight(t *testing.T) {
	la, _ := Resolve("America/Los_Angeles")
	// 03:00 UTC on Jan 2 is still Jan 1 in Los Angeles.
	at := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)

	if got := DateKey(at, la); got != "2024-01-01" {
		t.Fatalf("expected 2024-01-01, got %s", got)
	}
	if got := DateKey(at, time.UTC); got != "2024-01-02" {
		t.Fatalf("expected 2024-01-02, got %s", got)
	}
	if SameLocalDay(at, at.Add(-4*time.Hour), time.UTC) {
		t.Fatal("expected different UTC days")
	}
	if !SameLocalDay(at, at.Add(-4*time.Hour), la) {
		t.Fatal("expected same LA day")
	}
}

func TestStartOfWeek_MondayBased(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday

	cases := []time.Time{
		monday,
		monday.Add(49 * time.Hour),           // Wednesday
		monday.AddDate(0, 0, 6).Add(time.Hour), // Sunday
	}
	for _, at := range cases {
		if got := StartOfWeek(at, time.UTC); !got.Equal(monday) {
			t.Fatalf("StartOfWeek(%s) = %s, want %s", at, got, monday)
		}
	}

	sundayBefore := monday.Add(-time.Hour)
	want := monday.AddDate(0, 0, -7)
	if got := StartOfWeek(sundayBefore, time.UTC); !got.Equal(want) {
		t.Fatalf("StartOfWeek(%s) = %s, want %s", sundayBefore, got, want)
	}
}

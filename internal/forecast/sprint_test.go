package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func booking(t *testing.T, date string, hours float64) model.BookingRecord {
	t.Helper()
	return model.BookingRecord{Date: mustDate(t, date), Hours: hours, Project: "P1"}
}

func TestSegmentTilesBackwardFromAsOf(t *testing.T) {
	asOf := mustDate(t, "2026-03-01")

	sprints, err := Segment(nil, 4, 14, asOf)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if len(sprints) != 4 {
		t.Fatalf("got %d sprints, want 4", len(sprints))
	}

	if !sprints[0].End.Equal(asOf) {
		t.Fatalf("sprint 0 end = %v, want %v", sprints[0].End, asOf)
	}
	for i, s := range sprints {
		if s.Index != i {
			t.Fatalf("sprint %d has index %d", i, s.Index)
		}
		if got := s.End.Sub(s.Start); got != 14*24*time.Hour {
			t.Fatalf("sprint %d window length = %v, want 14 days", i, got)
		}
		if i > 0 && !s.End.Equal(sprints[i-1].Start) {
			t.Fatalf("gap between sprint %d and %d: %v != %v", i, i-1, s.End, sprints[i-1].Start)
		}
	}
}

func TestSegmentSumsHoursPerWindow(t *testing.T) {
	asOf := mustDate(t, "2026-03-01")
	bookings := []model.BookingRecord{
		booking(t, "2026-02-28", 8), // sprint 0, last day
		booking(t, "2026-02-15", 4), // sprint 0, first day
		booking(t, "2026-02-14", 6), // sprint 1, last day
		booking(t, "2026-01-05", 5), // sprint 3
		booking(t, "2025-12-01", 99), // before sprint 3, ignored
		booking(t, "2026-03-01", 99), // asOf itself is exclusive, ignored
	}

	sprints, err := Segment(bookings, 4, 14, asOf)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}

	wantTotals := []float64{12, 6, 0, 5}
	for i, want := range wantTotals {
		if sprints[i].TotalHours != want {
			t.Fatalf("sprint %d total = %.1f, want %.1f", i, sprints[i].TotalHours, want)
		}
	}
}

func TestSegmentComparesCalendarDatesAcrossZones(t *testing.T) {
	// asOf arrives as a local wall-clock time; the stored bookings parse as
	// UTC midnight. The same calendar dates must land in the same windows
	// regardless.
	est := time.FixedZone("EST", -5*60*60)
	asOf := time.Date(2026, 3, 1, 10, 0, 0, 0, est)

	bookings := []model.BookingRecord{
		booking(t, "2026-03-01", 99), // dated asOf itself, exclusive
		booking(t, "2026-02-15", 8),  // first day of sprint 0
	}

	sprints, err := Segment(bookings, 4, 14, asOf)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if sprints[0].TotalHours != 8 {
		t.Fatalf("sprint 0 total = %.1f, want 8 (first-day booking in, as-of booking out)", sprints[0].TotalHours)
	}
	if sprints[1].TotalHours != 0 {
		t.Fatalf("sprint 1 total = %.1f, want 0", sprints[1].TotalHours)
	}
}

func TestSegmentKeepsEmptySprints(t *testing.T) {
	asOf := mustDate(t, "2026-03-01")
	sprints, err := Segment([]model.BookingRecord{booking(t, "2026-02-20", 3)}, 4, 14, asOf)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if len(sprints) != 4 {
		t.Fatalf("got %d sprints, want 4 even when three are empty", len(sprints))
	}
	if sprints[1].TotalHours != 0 || sprints[2].TotalHours != 0 || sprints[3].TotalHours != 0 {
		t.Fatal("empty sprints should carry zero hours, not be dropped")
	}
}

func TestSegmentRejectsBadParameters(t *testing.T) {
	asOf := mustDate(t, "2026-03-01")

	if _, err := Segment(nil, 0, 14, asOf); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("sprint count 0: got %v, want ErrInvalidParameter", err)
	}
	if _, err := Segment(nil, 4, 0, asOf); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("sprint length 0: got %v, want ErrInvalidParameter", err)
	}
}

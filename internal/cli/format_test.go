package cli

import (
	"testing"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

func TestFormatHours(t *testing.T) {
	if got := FormatHours(40); got != "40h" {
		t.Fatalf("FormatHours(40) = %q", got)
	}
	if got := FormatHours(37.25); got != "37.3h" {
		t.Fatalf("FormatHours(37.25) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "—" {
		t.Fatalf("zero date = %q, want dash", got)
	}
	d, _ := time.Parse("2006-01-02", "2026-03-16")
	if got := FormatDate(d); got != "Mar 16, 2026" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestFormatSprintWindowShowsInclusiveEnd(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2026-02-15")
	end, _ := time.Parse("2006-01-02", "2026-03-01")
	s := model.Sprint{Start: start, End: end}

	// End is exclusive, so the displayed last day is Feb 28.
	if got := FormatSprintWindow(s); got != "Feb 15 – Feb 28" {
		t.Fatalf("FormatSprintWindow = %q", got)
	}
}

func TestFormatTrend(t *testing.T) {
	got := FormatTrend(model.TrendInfo{Direction: model.TrendRising, Slope: 5})
	if got != "↑ rising (+5.0h/sprint)" {
		t.Fatalf("rising = %q", got)
	}

	got = FormatTrend(model.TrendInfo{Insufficient: true})
	if got != "– insufficient data" {
		t.Fatalf("insufficient = %q", got)
	}
}

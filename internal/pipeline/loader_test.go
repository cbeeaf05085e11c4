package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

func TestParseCSVCanonicalHeader(t *testing.T) {
	in := strings.NewReader(
		"date,project,activity,hours\n" +
			"2026-02-20,P1,Dev,8\n" +
			"2026-02-21,P1,,4.5\n")

	result, err := parseCSV(in)
	if err != nil {
		t.Fatalf("parseCSV: %v", err)
	}
	if result.Skipped != 0 {
		t.Fatalf("skipped %d rows, want 0", result.Skipped)
	}
	if len(result.Bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(result.Bookings))
	}

	b := result.Bookings[0]
	if b.Project != "P1" || b.Activity != "Dev" || b.Hours != 8 {
		t.Fatalf("first booking = %+v", b)
	}
	want, _ := time.Parse("2006-01-02", "2026-02-20")
	if !b.Date.Equal(want) {
		t.Fatalf("date = %v, want %v", b.Date, want)
	}
}

func TestParseCSVGermanExport(t *testing.T) {
	// Header names and value formats as produced by the usual
	// time-tracking exports: dotted dates, decimal commas.
	in := strings.NewReader(
		"DatumBuchung,Projekt,Stunden\n" +
			"20.02.2026,P24ABC01,\"7,5\"\n")

	result, err := parseCSV(in)
	if err != nil {
		t.Fatalf("parseCSV: %v", err)
	}
	if len(result.Bookings) != 1 {
		t.Fatalf("got %d bookings, want 1 (skipped %d)", len(result.Bookings), result.Skipped)
	}
	b := result.Bookings[0]
	if b.Project != "P24ABC01" || b.Hours != 7.5 {
		t.Fatalf("booking = %+v", b)
	}
}

func TestParseCSVSkipsBadRows(t *testing.T) {
	in := strings.NewReader(
		"date,project,hours\n" +
			"not-a-date,P1,8\n" +
			"2026-02-20,,8\n" +
			"2026-02-21,P1,-3\n" +
			"2026-02-22,P1,6\n")

	result, err := parseCSV(in)
	if err != nil {
		t.Fatalf("parseCSV: %v", err)
	}
	if len(result.Bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(result.Bookings))
	}
	if result.Skipped != 3 {
		t.Fatalf("skipped = %d, want 3", result.Skipped)
	}
}

func TestParseCSVMissingColumn(t *testing.T) {
	in := strings.NewReader("date,hours\n2026-02-20,8\n")
	if _, err := parseCSV(in); err == nil {
		t.Fatal("missing project column accepted")
	}
}

func TestFilterByScope(t *testing.T) {
	bookings := []model.BookingRecord{
		{Project: "P1", Activity: "Dev", Hours: 1},
		{Project: "P1", Activity: "Test", Hours: 2},
		{Project: "P2", Activity: "Dev", Hours: 4},
	}

	all := FilterByScope(bookings, model.Scope{Project: "P1"})
	if TotalHours(all) != 3 {
		t.Fatalf("project scope hours = %.1f, want 3", TotalHours(all))
	}

	dev := FilterByScope(bookings, model.Scope{Project: "P1", Activity: "Dev"})
	if len(dev) != 1 || dev[0].Hours != 1 {
		t.Fatalf("activity scope = %+v", dev)
	}
}

func TestFilterByRange(t *testing.T) {
	d := func(s string) time.Time {
		v, _ := time.Parse("2006-01-02", s)
		return v
	}
	bookings := []model.BookingRecord{
		{Date: d("2026-01-01"), Hours: 1},
		{Date: d("2026-02-01"), Hours: 2},
		{Date: d("2026-03-01"), Hours: 4},
	}

	got := FilterByRange(bookings, d("2026-01-15"), d("2026-03-01"))
	if len(got) != 1 || got[0].Hours != 2 {
		t.Fatalf("range filter = %+v, want the single February row", got)
	}
}

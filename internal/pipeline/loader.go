// Package pipeline loads booking rows from export files and prepares them
// for the forecast engine.
package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

// LoadResult holds the outcome of a booking import.
type LoadResult struct {
	Bookings []model.BookingRecord
	Skipped  int // rows that could not be parsed
}

// Accepted date layouts. Time-tracking exports commonly use ISO dates or
// the dotted day-first form.
var dateLayouts = []string{"2006-01-02", "02.01.2006", "2006-01-02T15:04:05Z07:00"}

// LoadCSV reads bookings from a CSV export. The first row must be a header;
// column matching is case-insensitive and order-free. Required columns are
// date, project, and hours; activity is optional. Unparseable rows are
// counted, not fatal.
func LoadCSV(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bookings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parseCSV(f)
}

func parseCSV(r io.Reader) (*LoadResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[normalizeColumn(name)] = i
	}

	dateCol, ok := cols["date"]
	if !ok {
		return nil, fmt.Errorf("csv header has no date column (got %q)", strings.Join(header, ","))
	}
	projectCol, ok := cols["project"]
	if !ok {
		return nil, fmt.Errorf("csv header has no project column (got %q)", strings.Join(header, ","))
	}
	hoursCol, ok := cols["hours"]
	if !ok {
		return nil, fmt.Errorf("csv header has no hours column (got %q)", strings.Join(header, ","))
	}
	activityCol, hasActivity := cols["activity"]

	result := &LoadResult{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			continue
		}

		date, ok := parseDate(row[dateCol])
		if !ok {
			result.Skipped++
			continue
		}
		hours, err := parseHours(row[hoursCol])
		if err != nil || hours < 0 {
			result.Skipped++
			continue
		}
		project := strings.TrimSpace(row[projectCol])
		if project == "" {
			result.Skipped++
			continue
		}

		b := model.BookingRecord{Date: date, Hours: hours, Project: project}
		if hasActivity && activityCol < len(row) {
			b.Activity = strings.TrimSpace(row[activityCol])
		}
		result.Bookings = append(result.Bookings, b)
	}

	return result, nil
}

// normalizeColumn maps common export header names onto the canonical ones.
func normalizeColumn(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "date", "booking_date", "booked_on", "datum", "datumbuchung":
		return "date"
	case "project", "project_id", "projekt":
		return "project"
	case "hours", "stunden", "faktstd":
		return "hours"
	case "activity", "taetigkeit", "tätigkeit":
		return "activity"
	}
	return strings.ToLower(strings.TrimSpace(name))
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// parseHours accepts both decimal-point and decimal-comma values.
func parseHours(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

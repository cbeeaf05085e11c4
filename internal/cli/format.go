// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

// FormatHours formats an hour value, trimming needless precision.
// e.g., 37.3 -> "37.3h", 40 -> "40h"
func FormatHours(h float64) string {
	if h == float64(int64(h)) {
		return fmt.Sprintf("%dh", int64(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// FormatDays formats a remaining-days value.
func FormatDays(d float64) string {
	if d <= 0 {
		return "0d"
	}
	return fmt.Sprintf("%.0fd", d)
}

// FormatDate formats a calendar date, or a dash for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("Jan 02, 2006")
}

// FormatSprintWindow formats a half-open sprint window using its inclusive
// last day.
func FormatSprintWindow(s model.Sprint) string {
	last := s.End.AddDate(0, 0, -1)
	return fmt.Sprintf("%s – %s", s.Start.Format("Jan 02"), last.Format("Jan 02"))
}

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// FormatTrend renders the trend classification with an arrow.
func FormatTrend(tr model.TrendInfo) string {
	if tr.Insufficient {
		return "– insufficient data"
	}
	switch tr.Direction {
	case model.TrendRising:
		return fmt.Sprintf("↑ rising (%+.1fh/sprint)", tr.Slope)
	case model.TrendFalling:
		return fmt.Sprintf("↓ falling (%+.1fh/sprint)", tr.Slope)
	default:
		return fmt.Sprintf("→ stable (%+.1fh/sprint)", tr.Slope)
	}
}

// FormatStatus maps a forecast status to its display phrase.
func FormatStatus(st model.Status) string {
	switch st {
	case model.StatusOK:
		return "on track for projection"
	case model.StatusNoForecast:
		return "no target hours set"
	case model.StatusNoActivity:
		return "no recent booking activity"
	case model.StatusExhausted:
		return "budget exhausted"
	}
	return string(st)
}

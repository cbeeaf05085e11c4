package pipeline

import (
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

// FilterByScope returns bookings matching the scope. An empty activity
// matches every activity of the project.
func FilterByScope(bookings []model.BookingRecord, scope model.Scope) []model.BookingRecord {
	var result []model.BookingRecord
	for _, b := range bookings {
		if b.Project != scope.Project {
			continue
		}
		if scope.Activity != "" && b.Activity != scope.Activity {
			continue
		}
		result = append(result, b)
	}
	return result
}

// FilterByRange returns bookings whose date falls within [since, until).
// A zero bound is open.
func FilterByRange(bookings []model.BookingRecord, since, until time.Time) []model.BookingRecord {
	if since.IsZero() && until.IsZero() {
		return bookings
	}

	var result []model.BookingRecord
	for _, b := range bookings {
		if !since.IsZero() && b.Date.Before(since) {
			continue
		}
		if !until.IsZero() && !b.Date.Before(until) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// TotalHours sums the hours over a booking set.
func TotalHours(bookings []model.BookingRecord) float64 {
	var total float64
	for _, b := range bookings {
		total += b.Hours
	}
	return total
}

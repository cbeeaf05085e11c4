// Package forecast implements the sprint-based budget-exhaustion engine:
// sprint segmentation, recency-weighted velocity, trend classification,
// scenario projection, and override-aware forecast assembly.
package forecast

import (
	"fmt"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

// Defaults mirror the two-week cadence the engine was designed around.
const (
	DefaultSprintCount      = 4
	DefaultSprintLengthDays = 14
)

// Segment partitions bookings into sprintCount windows of sprintLengthDays,
// tiling backward from asOf with no gaps. Sprint 0 is the most recent window
// [asOf-length, asOf); each following sprint immediately precedes it.
// Bookings outside the union of all windows are ignored. A window with no
// bookings still appears with zero hours, since "no activity" is signal for
// the downstream velocity and trend computations. Membership is decided by
// calendar date: asOf and the booking dates may carry different locations.
func Segment(bookings []model.BookingRecord, sprintCount, sprintLengthDays int, asOf time.Time) ([]model.Sprint, error) {
	if sprintCount < 1 {
		return nil, fmt.Errorf("%w: sprint count %d, need at least 1", ErrInvalidParameter, sprintCount)
	}
	if sprintLengthDays < 1 {
		return nil, fmt.Errorf("%w: sprint length %d days, need at least 1", ErrInvalidParameter, sprintLengthDays)
	}

	asOf = truncateDay(asOf)
	sprints := make([]model.Sprint, sprintCount)
	for i := range sprints {
		end := asOf.AddDate(0, 0, -i*sprintLengthDays)
		sprints[i] = model.Sprint{
			Index: i,
			Start: end.AddDate(0, 0, -sprintLengthDays),
			End:   end,
		}
	}

	for _, b := range bookings {
		d := truncateDay(b.Date)
		for i := range sprints {
			if !d.Before(sprints[i].Start) && d.Before(sprints[i].End) {
				sprints[i].TotalHours += b.Hours
				break
			}
		}
	}

	return sprints, nil
}

// truncateDay maps a value to its calendar date at UTC midnight. Window
// boundaries and booking dates both pass through here, so membership checks
// compare dates, never instants across zones.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

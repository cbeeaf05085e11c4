// Package model defines domain types for hourburn bookings, budgets, and forecasts.
package model

import "time"

// BookingRecord is one work-hour booking against a project activity.
// Records are read-only input to the forecast engine.
type BookingRecord struct {
	Date     time.Time `json:"date"`
	Hours    float64   `json:"hours"`
	Project  string    `json:"project"`
	Activity string    `json:"activity,omitempty"`
}

// Scope identifies the subject of a forecast and of an override: a project,
// optionally narrowed to a single activity. An empty activity means the
// project-level aggregate across all activities.
type Scope struct {
	Project  string `json:"project"`
	Activity string `json:"activity,omitempty"`
}

func (s Scope) String() string {
	if s.Activity == "" {
		return s.Project
	}
	return s.Project + "/" + s.Activity
}

// ChangeType categorizes a budget history entry.
type ChangeType string

const (
	ChangeInitial    ChangeType = "initial"
	ChangeExtension  ChangeType = "extension"
	ChangeCorrection ChangeType = "correction"
	ChangeReduction  ChangeType = "reduction"
)

// Valid reports whether the change type is one of the known kinds.
func (c ChangeType) Valid() bool {
	switch c {
	case ChangeInitial, ChangeExtension, ChangeCorrection, ChangeReduction:
		return true
	}
	return false
}

// BudgetEntry is one append-only budget change. The target hours for a scope
// at a date is the sum of entry hours with ValidFrom on or before that date,
// so reductions carry negative hours.
type BudgetEntry struct {
	ID         int64      `json:"id"`
	Project    string     `json:"project"`
	Activity   string     `json:"activity,omitempty"`
	Hours      float64    `json:"hours"`
	ChangeType ChangeType `json:"change_type"`
	ValidFrom  time.Time  `json:"valid_from"`
	Reason     string     `json:"reason"`
	Reference  string     `json:"reference,omitempty"`
	CreatedBy  string     `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ScopeSummary aggregates bookings for one project/activity pair.
type ScopeSummary struct {
	Project     string    `json:"project"`
	Activity    string    `json:"activity,omitempty"`
	BookedHours float64   `json:"booked_hours"`
	Bookings    int       `json:"bookings"`
	FirstDate   time.Time `json:"first_date"`
	LastDate    time.Time `json:"last_date"`
}

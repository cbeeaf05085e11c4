package store

import (
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

const dayFormat = "2006-01-02"

// SaveBookings inserts booking rows in one transaction.
func (s *Store) SaveBookings(bookings []model.BookingRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return storageErr("begin bookings tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO bookings (booked_on, project, activity, hours)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return storageErr("prepare booking insert", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, b := range bookings {
		if _, err := stmt.Exec(b.Date.Format(dayFormat), b.Project, b.Activity, b.Hours); err != nil {
			return storageErr("insert booking", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit bookings", err)
	}
	return nil
}

// Bookings returns the booking rows for a scope, oldest first. A scope with
// an empty activity covers all activities of the project.
func (s *Store) Bookings(scope model.Scope) ([]model.BookingRecord, error) {
	query := `SELECT booked_on, project, activity, hours FROM bookings WHERE project = ?`
	args := []any{scope.Project}
	if scope.Activity != "" {
		query += ` AND activity = ?`
		args = append(args, scope.Activity)
	}
	query += ` ORDER BY booked_on ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storageErr("query bookings", err)
	}
	defer func() { _ = rows.Close() }()

	var bookings []model.BookingRecord
	for rows.Next() {
		var b model.BookingRecord
		var day string
		if err := rows.Scan(&day, &b.Project, &b.Activity, &b.Hours); err != nil {
			return nil, storageErr("scan booking", err)
		}
		b.Date, err = time.Parse(dayFormat, day)
		if err != nil {
			return nil, storageErr("parse booking date", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, storageErr("read bookings", rows.Err())
}

// Scopes summarizes bookings per project/activity pair, projects first.
func (s *Store) Scopes() ([]model.ScopeSummary, error) {
	rows, err := s.db.Query(`SELECT project, activity, SUM(hours), COUNT(*), MIN(booked_on), MAX(booked_on)
		FROM bookings GROUP BY project, activity ORDER BY project, activity`)
	if err != nil {
		return nil, storageErr("query scopes", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []model.ScopeSummary
	for rows.Next() {
		var sum model.ScopeSummary
		var first, last string
		if err := rows.Scan(&sum.Project, &sum.Activity, &sum.BookedHours, &sum.Bookings, &first, &last); err != nil {
			return nil, storageErr("scan scope", err)
		}
		sum.FirstDate, err = time.Parse(dayFormat, first)
		if err != nil {
			return nil, storageErr("parse scope first date", err)
		}
		sum.LastDate, err = time.Parse(dayFormat, last)
		if err != nil {
			return nil, storageErr("parse scope last date", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, storageErr("read scopes", rows.Err())
}

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

// AddBudgetEntry appends one budget change to the history. The history is
// append-only; corrections are new entries, never updates.
func (s *Store) AddBudgetEntry(e model.BudgetEntry) error {
	if !e.ChangeType.Valid() {
		return fmt.Errorf("unknown change type %q", e.ChangeType)
	}

	var reference any
	if e.Reference != "" {
		reference = e.Reference
	}

	_, err := s.db.Exec(`INSERT INTO budget_history
		(project, activity, hours, change_type, valid_from, reason, reference, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Project, e.Activity, e.Hours, string(e.ChangeType), e.ValidFrom.Format(dayFormat),
		e.Reason, reference, e.CreatedBy, e.CreatedAt.UTC().Format(time.RFC3339),
	)
	return storageErr("insert budget entry", err)
}

// TargetHoursAt returns the target hours valid for a scope at the given
// date: the sum of all history entries effective on or before it. A scope
// with an empty activity sums across the whole project.
func (s *Store) TargetHoursAt(scope model.Scope, at time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(hours), 0) FROM budget_history WHERE project = ? AND valid_from <= ?`
	args := []any{scope.Project, at.Format(dayFormat)}
	if scope.Activity != "" {
		query += ` AND activity = ?`
		args = append(args, scope.Activity)
	}

	var total float64
	err := s.db.QueryRow(query, args...).Scan(&total)
	if err != nil {
		return 0, storageErr("sum budget history", err)
	}
	return total, nil
}

// BudgetHistory returns the full change history for a scope, newest first.
func (s *Store) BudgetHistory(scope model.Scope) ([]model.BudgetEntry, error) {
	query := `SELECT id, project, activity, hours, change_type, valid_from, reference, reason, created_by, created_at
		FROM budget_history WHERE project = ?`
	args := []any{scope.Project}
	if scope.Activity != "" {
		query += ` AND activity = ?`
		args = append(args, scope.Activity)
	}
	query += ` ORDER BY valid_from DESC, created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storageErr("query budget history", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.BudgetEntry
	for rows.Next() {
		var e model.BudgetEntry
		var changeType, validFrom, createdAt string
		var reference sql.NullString
		if err := rows.Scan(&e.ID, &e.Project, &e.Activity, &e.Hours, &changeType,
			&validFrom, &reference, &e.Reason, &e.CreatedBy, &createdAt); err != nil {
			return nil, storageErr("scan budget entry", err)
		}
		e.ChangeType = model.ChangeType(changeType)
		e.ValidFrom, err = time.Parse(dayFormat, validFrom)
		if err != nil {
			return nil, storageErr("parse budget valid_from", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, storageErr("parse budget timestamp", err)
		}
		if reference.Valid {
			e.Reference = reference.String
		}
		entries = append(entries, e)
	}
	return entries, storageErr("read budget history", rows.Err())
}

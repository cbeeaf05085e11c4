package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

// SaveOverride stores the override for its scope, replacing any prior value.
// The single-statement upsert keeps the write atomic per scope: a concurrent
// reader sees either the old record or the new one, never a mix.
func (s *Store) SaveOverride(ov model.Override) error {
	_, err := s.db.Exec(`INSERT INTO overrides (project, activity, hours_per_sprint, reason, author, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(project, activity) DO UPDATE SET
			hours_per_sprint = excluded.hours_per_sprint,
			reason           = excluded.reason,
			author           = excluded.author,
			created_at       = excluded.created_at`,
		ov.Scope.Project, ov.Scope.Activity, ov.HoursPerSprint, ov.Reason, ov.Author,
		ov.CreatedAt.UTC().Format(time.RFC3339),
	)
	return storageErr("save override", err)
}

// Override returns the stored override for a scope, reporting whether one
// exists.
func (s *Store) Override(scope model.Scope) (model.Override, bool, error) {
	var ov model.Override
	var createdAt string

	err := s.db.QueryRow(`SELECT hours_per_sprint, reason, author, created_at
		FROM overrides WHERE project = ? AND activity = ?`,
		scope.Project, scope.Activity,
	).Scan(&ov.HoursPerSprint, &ov.Reason, &ov.Author, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Override{}, false, nil
	}
	if err != nil {
		return model.Override{}, false, storageErr("read override", err)
	}

	ov.Scope = scope
	ov.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return model.Override{}, false, storageErr("parse override timestamp", err)
	}
	return ov, true, nil
}

// DeleteOverride removes the override for a scope, if present.
func (s *Store) DeleteOverride(scope model.Scope) error {
	_, err := s.db.Exec(`DELETE FROM overrides WHERE project = ? AND activity = ?`,
		scope.Project, scope.Activity)
	return storageErr("delete override", err)
}

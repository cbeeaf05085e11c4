package forecast

import (
	"fmt"
	"strings"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

// OverrideStore is the durable medium for manual velocity overrides: one
// record per scope, replaced wholesale on write. Writes must be atomic per
// scope so a reader never observes a partial record; concurrent writers to
// the same scope are last-write-wins, and different scopes never interfere.
type OverrideStore interface {
	OverrideSource
	SaveOverride(ov model.Override) error
	DeleteOverride(scope model.Scope) error
}

// Overrides validates and persists manual velocity overrides on top of a
// storage medium. Input validation lives here so every medium gets the same
// rules.
type Overrides struct {
	store OverrideStore
}

// NewOverrides returns an override manager backed by the given store.
func NewOverrides(store OverrideStore) *Overrides {
	return &Overrides{store: store}
}

// Write records a manual velocity for the scope, replacing any prior value.
// The reason is mandatory and the velocity must not be negative; on a
// validation failure the stored override is left untouched.
func (o *Overrides) Write(scope model.Scope, hoursPerSprint float64, reason, author string, now time.Time) (model.Override, error) {
	if strings.TrimSpace(reason) == "" {
		return model.Override{}, fmt.Errorf("%w: override needs a non-empty reason", ErrValidation)
	}
	if hoursPerSprint < 0 {
		return model.Override{}, fmt.Errorf("%w: hours per sprint must not be negative, got %.1f",
			ErrValidation, hoursPerSprint)
	}

	ov := model.Override{
		Scope:          scope,
		HoursPerSprint: hoursPerSprint,
		Reason:         strings.TrimSpace(reason),
		Author:         author,
		CreatedAt:      now.UTC(),
	}
	if err := o.store.SaveOverride(ov); err != nil {
		return model.Override{}, err
	}
	return ov, nil
}

// Read returns the active override for the scope, if any.
func (o *Overrides) Read(scope model.Scope) (model.Override, bool, error) {
	return o.store.Override(scope)
}

// Clear removes the override for the scope. Clearing a scope without an
// override is a no-op.
func (o *Overrides) Clear(scope model.Scope) error {
	return o.store.DeleteOverride(scope)
}

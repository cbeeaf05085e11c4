package forecast

import (
	"fmt"
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

// OverrideSource supplies the active manual velocity override for a scope,
// if one exists.
type OverrideSource interface {
	Override(scope model.Scope) (model.Override, bool, error)
}

// Params hold the engine tuning knobs. Zero values are not usable; start
// from DefaultParams.
type Params struct {
	SprintCount      int
	SprintLengthDays int
	Weights          []float64
	BandMultiplier   float64
	TrendThreshold   float64
}

// DefaultParams returns the standard engine configuration.
func DefaultParams() Params {
	return Params{
		SprintCount:      DefaultSprintCount,
		SprintLengthDays: DefaultSprintLengthDays,
		Weights:          DefaultWeights(),
		BandMultiplier:   DefaultBandMultiplier,
		TrendThreshold:   DefaultTrendThreshold,
	}
}

// Projector assembles budget forecasts from bookings, a target, and any
// active manual override. Apart from the override read every computation is
// deterministic and side-effect-free: identical inputs yield the identical
// forecast.
type Projector struct {
	params    Params
	overrides OverrideSource
}

// NewProjector returns a projector with the given parameters. overrides may
// be nil, in which case forecasts never apply a manual velocity.
func NewProjector(params Params, overrides OverrideSource) *Projector {
	return &Projector{params: params, overrides: overrides}
}

// Forecast computes the budget-exhaustion forecast for one scope as of the
// given date. It always returns a well-formed result with an explicit
// status; degraded data (zero target, no activity, spent budget) is a
// status, never an error.
func (p *Projector) Forecast(scope model.Scope, bookings []model.BookingRecord, targetHours float64, asOf time.Time) (model.BudgetForecast, error) {
	sprints, err := Segment(bookings, p.params.SprintCount, p.params.SprintLengthDays, asOf)
	if err != nil {
		return model.BudgetForecast{}, err
	}

	est, err := Compute(sprints, p.params.Weights)
	if err != nil {
		return model.BudgetForecast{}, err
	}

	// Stamp the positional weights onto the sprints for presentation.
	for i := range sprints {
		sprints[i].Weight = p.params.Weights[i]
	}

	var actual float64
	for _, b := range bookings {
		actual += b.Hours
	}

	fc := model.BudgetForecast{
		Scope:          scope,
		AsOf:           truncateDay(asOf),
		TargetHours:    targetHours,
		ActualHours:    actual,
		RemainingHours: targetHours - actual,
		Sprints:        sprints,
		Estimate:       est,
		Trend:          Classify(sprints, p.params.TrendThreshold),
	}

	if p.overrides != nil {
		ov, ok, err := p.overrides.Override(scope)
		if err != nil {
			return model.BudgetForecast{}, fmt.Errorf("reading override for %s: %w", scope, err)
		}
		if ok {
			fc.Override = &ov
		}
	}

	// Status resolution is a fixed priority: a missing target beats
	// everything, so a scope with zero target but recorded bookings is
	// no_forecast, never no_activity.
	if targetHours <= 0 {
		fc.Status = model.StatusNoForecast
		return fc, nil
	}
	if est.SampleSize == 0 {
		fc.Status = model.StatusNoActivity
		return fc, nil
	}

	set := Project(est, fc.RemainingHours, p.params.BandMultiplier, p.params.SprintLengthDays, fc.AsOf)
	if fc.Override != nil {
		// The override replaces only the realistic velocity. The band
		// scenarios stay anchored to the automatic estimate's
		// dispersion, so the spread still reflects observed history.
		set.Realistic = buildScenario(LabelRealistic, probRealistic,
			fc.Override.HoursPerSprint, fc.RemainingHours, p.params.SprintLengthDays, fc.AsOf)
	}
	fc.Scenarios = &set

	if fc.RemainingHours <= 0 {
		fc.Status = model.StatusExhausted
	} else {
		fc.Status = model.StatusOK
	}
	return fc, nil
}

package forecast

import (
	"time"

	"github.com/mfelsing/hourburn/internal/model"
)

// DefaultBandMultiplier widens the optimistic and pessimistic velocities by
// this many standard deviations around the automatic estimate.
const DefaultBandMultiplier = 1.5

// maxProjectionDays bounds the projected end date. A near-zero velocity
// against a large remainder can push days remaining past what a
// time.Duration holds; beyond the horizon the date stays zero while the
// numeric fields keep the exact values.
const maxProjectionDays = 365 * 200

// Scenario labels and their fixed probabilities.
const (
	LabelOptimistic  = "optimistic"
	LabelRealistic   = "realistic"
	LabelPessimistic = "pessimistic"

	probOptimistic  = 90
	probRealistic   = 50
	probPessimistic = 10
)

// Project derives the three confidence-banded completion scenarios from a
// velocity estimate. Optimistic assumes the estimate plus the band,
// realistic the estimate itself, pessimistic the estimate minus the band
// clamped at zero. Higher assumed velocity exhausts the budget earlier, so
// whenever all three scenarios are bounded their projected end dates are
// ordered optimistic <= realistic <= pessimistic.
func Project(est model.VelocityEstimate, remainingHours, bandMultiplier float64, sprintLengthDays int, asOf time.Time) model.ScenarioSet {
	band := bandMultiplier * est.StdDeviation
	return model.ScenarioSet{
		Optimistic:  buildScenario(LabelOptimistic, probOptimistic, est.WeightedAverage+band, remainingHours, sprintLengthDays, asOf),
		Realistic:   buildScenario(LabelRealistic, probRealistic, est.WeightedAverage, remainingHours, sprintLengthDays, asOf),
		Pessimistic: buildScenario(LabelPessimistic, probPessimistic, est.WeightedAverage-band, remainingHours, sprintLengthDays, asOf),
	}
}

func buildScenario(label string, probability int, velocity, remainingHours float64, sprintLengthDays int, asOf time.Time) model.ForecastScenario {
	if velocity < 0 {
		velocity = 0
	}

	sc := model.ForecastScenario{
		Label:          label,
		Probability:    probability,
		VelocityUsed:   velocity,
		RemainingHours: remainingHours,
	}

	if remainingHours <= 0 {
		// Already burned through the budget; days remaining is zero no
		// matter the velocity.
		sc.Exhausted = true
		return sc
	}
	if velocity <= 0 {
		// At this rate the budget never runs out. Terminal state, not
		// an error.
		sc.Unbounded = true
		return sc
	}

	sc.SprintsRemaining = remainingHours / velocity
	sc.DaysRemaining = sc.SprintsRemaining * float64(sprintLengthDays)
	if sc.DaysRemaining <= maxProjectionDays {
		whole := int(sc.DaysRemaining)
		frac := sc.DaysRemaining - float64(whole)
		sc.ProjectedEnd = asOf.AddDate(0, 0, whole).Add(time.Duration(frac * 24 * float64(time.Hour)))
	}
	return sc
}

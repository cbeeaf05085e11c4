package forecast

import (
	"math"
	"testing"

	"github.com/mfelsing/hourburn/internal/model"
)

func TestProjectScenarioOrdering(t *testing.T) {
	est := model.VelocityEstimate{WeightedAverage: 37.3, StdDeviation: 3.0, SampleSize: 4}
	asOf := mustDate(t, "2026-03-01")

	set := Project(est, 40, DefaultBandMultiplier, 14, asOf)

	if set.Optimistic.VelocityUsed <= set.Realistic.VelocityUsed ||
		set.Realistic.VelocityUsed <= set.Pessimistic.VelocityUsed {
		t.Fatalf("velocity ordering broken: %.2f / %.2f / %.2f",
			set.Optimistic.VelocityUsed, set.Realistic.VelocityUsed, set.Pessimistic.VelocityUsed)
	}
	if set.Optimistic.ProjectedEnd.After(set.Realistic.ProjectedEnd) {
		t.Fatal("optimistic end date after realistic")
	}
	if set.Realistic.ProjectedEnd.After(set.Pessimistic.ProjectedEnd) {
		t.Fatal("realistic end date after pessimistic")
	}
}

func TestProjectDaysRemainingFormula(t *testing.T) {
	est := model.VelocityEstimate{WeightedAverage: 37.3, StdDeviation: 0, SampleSize: 4}
	asOf := mustDate(t, "2026-03-01")

	set := Project(est, 40, DefaultBandMultiplier, 14, asOf)

	wantSprints := 40 / 37.3
	if math.Abs(set.Realistic.SprintsRemaining-wantSprints) > 1e-6 {
		t.Fatalf("sprints remaining = %.6f, want %.6f", set.Realistic.SprintsRemaining, wantSprints)
	}
	wantDays := wantSprints * 14
	if math.Abs(set.Realistic.DaysRemaining-wantDays) > 1e-6 {
		t.Fatalf("days remaining = %.6f, want %.6f", set.Realistic.DaysRemaining, wantDays)
	}
	if set.Realistic.ProjectedEnd.IsZero() {
		t.Fatal("bounded scenario missing projected end date")
	}
}

func TestProjectProbabilities(t *testing.T) {
	est := model.VelocityEstimate{WeightedAverage: 20, StdDeviation: 2}
	set := Project(est, 50, DefaultBandMultiplier, 14, mustDate(t, "2026-03-01"))

	if set.Optimistic.Probability != 90 || set.Realistic.Probability != 50 || set.Pessimistic.Probability != 10 {
		t.Fatalf("probabilities = %d/%d/%d, want 90/50/10",
			set.Optimistic.Probability, set.Realistic.Probability, set.Pessimistic.Probability)
	}
}

func TestProjectPessimisticClampsAtZero(t *testing.T) {
	// Band larger than the average: pessimistic velocity would be negative.
	est := model.VelocityEstimate{WeightedAverage: 10, StdDeviation: 20}
	set := Project(est, 50, DefaultBandMultiplier, 14, mustDate(t, "2026-03-01"))

	if set.Pessimistic.VelocityUsed != 0 {
		t.Fatalf("pessimistic velocity = %.2f, want clamp to 0", set.Pessimistic.VelocityUsed)
	}
	if !set.Pessimistic.Unbounded {
		t.Fatal("zero-velocity scenario should be flagged unbounded")
	}
	if !set.Pessimistic.ProjectedEnd.IsZero() {
		t.Fatal("unbounded scenario must not carry an end date")
	}
}

func TestProjectCapsDistantEndDates(t *testing.T) {
	// A tiny positive velocity against a huge remainder: days remaining is
	// astronomical but exact, and the end date stays unset instead of
	// overflowing into garbage.
	est := model.VelocityEstimate{WeightedAverage: 0.001}
	set := Project(est, 1e6, 0, 14, mustDate(t, "2026-03-01"))

	sc := set.Realistic
	if sc.Unbounded || sc.Exhausted {
		t.Fatalf("positive velocity misflagged: %+v", sc)
	}
	wantDays := 1e6 / 0.001 * 14
	if math.Abs(sc.DaysRemaining-wantDays) > 1e-3 {
		t.Fatalf("days remaining = %.1f, want %.1f", sc.DaysRemaining, wantDays)
	}
	if !sc.ProjectedEnd.IsZero() {
		t.Fatalf("end date beyond the horizon = %v, want zero", sc.ProjectedEnd)
	}

	// A date within the horizon is still produced.
	near := Project(model.VelocityEstimate{WeightedAverage: 40}, 80, 0, 14, mustDate(t, "2026-03-01"))
	if near.Realistic.ProjectedEnd.IsZero() {
		t.Fatal("bounded scenario within the horizon missing its end date")
	}
}

func TestProjectExhaustedBudget(t *testing.T) {
	est := model.VelocityEstimate{WeightedAverage: 30, StdDeviation: 3}
	set := Project(est, -5, DefaultBandMultiplier, 14, mustDate(t, "2026-03-01"))

	for _, sc := range []model.ForecastScenario{set.Optimistic, set.Realistic, set.Pessimistic} {
		if !sc.Exhausted {
			t.Fatalf("%s: not flagged exhausted", sc.Label)
		}
		if sc.DaysRemaining != 0 {
			t.Fatalf("%s: days remaining = %.2f, want 0", sc.Label, sc.DaysRemaining)
		}
	}
}

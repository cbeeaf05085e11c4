package forecast

import (
	"errors"
	"math"
	"testing"

	"github.com/mfelsing/hourburn/internal/model"
)

func sprintsWithTotals(totals ...float64) []model.Sprint {
	sprints := make([]model.Sprint, len(totals))
	for i, h := range totals {
		sprints[i] = model.Sprint{Index: i, TotalHours: h}
	}
	return sprints
}

func TestComputeWeightedAverage(t *testing.T) {
	// 40*0.4 + 35*0.3 + 38*0.2 + 32*0.1 = 37.3
	est, err := Compute(sprintsWithTotals(40, 35, 38, 32), DefaultWeights())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if math.Abs(est.WeightedAverage-37.3) > 1e-9 {
		t.Fatalf("weighted average = %.4f, want 37.3", est.WeightedAverage)
	}
	if est.SampleSize != 4 {
		t.Fatalf("sample size = %d, want 4", est.SampleSize)
	}
}

func TestComputeStdDeviationIsUnweighted(t *testing.T) {
	est, err := Compute(sprintsWithTotals(40, 35, 38, 32), DefaultWeights())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// Population stddev of [40,35,38,32]: mean 36.25, variance 9.1875.
	want := math.Sqrt(9.1875)
	if math.Abs(est.StdDeviation-want) > 1e-9 {
		t.Fatalf("std deviation = %.6f, want %.6f", est.StdDeviation, want)
	}
}

func TestComputeRejectsBadWeights(t *testing.T) {
	sprints := sprintsWithTotals(10, 20, 30, 40)

	if _, err := Compute(sprints, []float64{0.5, 0.5}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("length mismatch: got %v, want ErrInvalidParameter", err)
	}
	if _, err := Compute(sprints, []float64{0.4, 0.3, 0.2, 0.2}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("sum 1.1: got %v, want ErrInvalidParameter", err)
	}

	// Within the 1e-6 tolerance is fine.
	if _, err := Compute(sprints, []float64{0.4, 0.3, 0.2, 0.1000005}); err != nil {
		t.Fatalf("sum within tolerance rejected: %v", err)
	}
}

func TestComputeConfidenceClampsToZero(t *testing.T) {
	// One busy sprint among idle ones: stddev far above the average.
	est, err := Compute(sprintsWithTotals(0, 0, 0, 100), DefaultWeights())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if est.Confidence != 0 {
		t.Fatalf("confidence = %.2f, want clamp to 0", est.Confidence)
	}
	if est.SampleSize != 1 {
		t.Fatalf("sample size = %d, want 1", est.SampleSize)
	}
}

func TestComputeAllZeroSprints(t *testing.T) {
	est, err := Compute(sprintsWithTotals(0, 0, 0, 0), DefaultWeights())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if est.WeightedAverage != 0 || est.StdDeviation != 0 {
		t.Fatalf("zero history should give zero estimate, got avg=%.2f std=%.2f",
			est.WeightedAverage, est.StdDeviation)
	}
	// 0/eps still clamps cleanly.
	if est.Confidence != 100 {
		t.Fatalf("confidence = %.2f, want 100 for zero dispersion", est.Confidence)
	}
	if est.SampleSize != 0 {
		t.Fatalf("sample size = %d, want 0", est.SampleSize)
	}
}

func TestComputeStableVelocityHasHighConfidence(t *testing.T) {
	est, err := Compute(sprintsWithTotals(20, 20, 20, 20), DefaultWeights())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if est.Confidence != 100 {
		t.Fatalf("confidence = %.2f, want 100 for perfectly stable totals", est.Confidence)
	}
}

package forecast

import (
	"fmt"
	"math"

	"github.com/mfelsing/hourburn/internal/model"
)

const (
	weightSumTolerance = 1e-6

	// velocityFloor keeps the confidence divisor positive when the
	// weighted average is zero.
	velocityFloor = 1e-6
)

// DefaultWeights returns the standard recency weighting, most recent sprint
// first. weights[i] pairs with sprints[i] positionally.
func DefaultWeights() []float64 {
	return []float64{0.40, 0.30, 0.20, 0.10}
}

// Compute derives the recency-weighted velocity estimate for a sprint set.
// The weight vector must match the sprint count index-for-index and sum to
// 1.0 within tolerance; anything else is a configuration error.
func Compute(sprints []model.Sprint, weights []float64) (model.VelocityEstimate, error) {
	if len(weights) != len(sprints) {
		return model.VelocityEstimate{}, fmt.Errorf("%w: %d weights for %d sprints",
			ErrInvalidParameter, len(weights), len(sprints))
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return model.VelocityEstimate{}, fmt.Errorf("%w: weights sum to %.6f, want 1.0",
			ErrInvalidParameter, sum)
	}

	var est model.VelocityEstimate
	for i, s := range sprints {
		est.WeightedAverage += weights[i] * s.TotalHours
		if s.TotalHours > 0 {
			est.SampleSize++
		}
	}

	// Dispersion is the population standard deviation of the raw,
	// unweighted sprint totals. It bands the scenarios; it does not feed
	// the point estimate.
	var mean float64
	for _, s := range sprints {
		mean += s.TotalHours
	}
	mean /= float64(len(sprints))

	var variance float64
	for _, s := range sprints {
		d := s.TotalHours - mean
		variance += d * d
	}
	variance /= float64(len(sprints))
	est.StdDeviation = math.Sqrt(variance)

	denom := est.WeightedAverage
	if denom < velocityFloor {
		denom = velocityFloor
	}
	est.Confidence = clamp(100*(1-est.StdDeviation/denom), 0, 100)

	return est, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

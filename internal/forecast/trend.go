package forecast

import "github.com/mfelsing/hourburn/internal/model"

// DefaultTrendThreshold is the slope in hours per sprint transition beyond
// which velocity counts as rising or falling. Fixed policy constant, not
// derived from the data.
const DefaultTrendThreshold = 2.0

// Classify reports whether velocity rises, falls, or holds steady across the
// sprint set. The slope is the newest-minus-oldest hour difference averaged
// over the sprint-to-sprint transitions. Fewer than two sprints with any
// recorded hours cannot carry a trend; the result is then stable with the
// insufficient-data flag set, which callers may surface as a warning.
func Classify(sprints []model.Sprint, threshold float64) model.TrendInfo {
	nonzero := 0
	for _, s := range sprints {
		if s.TotalHours > 0 {
			nonzero++
		}
	}
	if len(sprints) < 2 || nonzero < 2 {
		return model.TrendInfo{Direction: model.TrendStable, Insufficient: true}
	}

	// Sprint 0 is the newest window; the last index is the oldest.
	newest := sprints[0].TotalHours
	oldest := sprints[len(sprints)-1].TotalHours
	slope := (newest - oldest) / float64(len(sprints)-1)

	info := model.TrendInfo{Direction: model.TrendStable, Slope: slope}
	switch {
	case slope > threshold:
		info.Direction = model.TrendRising
	case slope < -threshold:
		info.Direction = model.TrendFalling
	}
	return info
}

package model

import "time"

// Sprint is one fixed-length aggregation window over the booking history.
// Index 0 is the most recent window; higher indices reach further into the
// past. The [Start, End) interval is half-open.
type Sprint struct {
	Index      int       `json:"index"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	TotalHours float64   `json:"total_hours"`
	Weight     float64   `json:"weight"`
}

// VelocityEstimate is the recency-weighted velocity derived from a sprint set.
type VelocityEstimate struct {
	WeightedAverage float64 `json:"weighted_average"` // hours per sprint
	StdDeviation    float64 `json:"std_deviation"`    // over the unweighted sprint totals
	Confidence      float64 `json:"confidence"`       // 0-100
	SampleSize      int     `json:"sample_size"`      // sprints with any recorded hours
}

// TrendDirection classifies how velocity changes across sprints.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendStable  TrendDirection = "stable"
	TrendFalling TrendDirection = "falling"
)

// TrendInfo carries the trend classification and its underlying slope.
// Insufficient is set when fewer than two sprints carry any hours; the
// direction is then stable by convention and callers may surface a warning.
type TrendInfo struct {
	Direction    TrendDirection `json:"direction"`
	Slope        float64        `json:"slope"` // hours per sprint transition
	Insufficient bool           `json:"insufficient_data,omitempty"`
}

// ForecastScenario is one completion projection at an assumed velocity.
type ForecastScenario struct {
	Label            string    `json:"label"`
	Probability      int       `json:"probability"` // fixed per label: 90/50/10
	VelocityUsed     float64   `json:"velocity_used"`
	RemainingHours   float64   `json:"remaining_hours"`
	SprintsRemaining float64   `json:"sprints_remaining"`
	DaysRemaining    float64   `json:"days_remaining"`
	ProjectedEnd     time.Time `json:"projected_end_date,omitzero"`
	Unbounded        bool      `json:"unbounded,omitempty"` // velocity is zero, budget never exhausts
	Exhausted        bool      `json:"exhausted,omitempty"` // nothing left to burn
}

// ScenarioSet holds the three confidence-banded scenarios.
type ScenarioSet struct {
	Optimistic  ForecastScenario `json:"optimistic"`
	Realistic   ForecastScenario `json:"realistic"`
	Pessimistic ForecastScenario `json:"pessimistic"`
}

// Override is a manually supplied velocity that supersedes the computed
// realistic velocity for one scope. At most one exists per scope; writes
// replace the prior value wholesale.
type Override struct {
	Scope          Scope     `json:"scope"`
	HoursPerSprint float64   `json:"hours_per_sprint"`
	Reason         string    `json:"reason"`
	Author         string    `json:"author"`
	CreatedAt      time.Time `json:"created_at"`
}

// Status is the overall state of a budget forecast. Degraded-data conditions
// are statuses, not errors.
type Status string

const (
	StatusOK         Status = "ok"
	StatusNoForecast Status = "no_forecast" // no target hours set
	StatusNoActivity Status = "no_activity" // no bookings in any sprint window
	StatusExhausted  Status = "exhausted"   // budget already used up
)

// BudgetForecast is the assembled forecast result for one scope.
// Scenarios is nil unless the status is ok or exhausted.
type BudgetForecast struct {
	Scope          Scope            `json:"scope"`
	AsOf           time.Time        `json:"as_of"`
	Status         Status           `json:"status"`
	TargetHours    float64          `json:"target_hours"`
	ActualHours    float64          `json:"actual_hours"`
	RemainingHours float64          `json:"remaining_hours"`
	Sprints        []Sprint         `json:"sprints"`
	Estimate       VelocityEstimate `json:"velocity_estimate"`
	Trend          TrendInfo        `json:"trend"`
	Scenarios      *ScenarioSet     `json:"scenarios,omitempty"`
	Override       *Override        `json:"active_override,omitempty"`
}

// Package trend fits degradation trends over a caller-owned, append-only
// sequence of feature observations and classifies maintenance urgency.
package trend

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"
)

// #region observation

// Observation is one {severity, delta} snapshot in a session's history.
// ObservedAt may be zero when the caller records only ordering.
type Observation struct {
	SeverityScore    float64   `json:"severityScore"`
	TemperatureDelta float64   `json:"temperatureDelta"`
	ObservedAt       time.Time `json:"observedAt,omitempty"`
}

// #endregion observation

// #region trend-types

// Direction classifies the fitted degradation trend.
type Direction string

const (
	TrendInsufficientData Direction = "insufficient_data"
	TrendWorsening        Direction = "worsening"
	TrendSlowWorsening    Direction = "slow_worsening"
	TrendStable           Direction = "stable"
)

// Urgency is the trend-derived scheduling priority, independent of
// single-snapshot risk.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// TrendReport is the fitted trend classification. Slopes are nil when no
// fit was possible and rounded to 2 decimals otherwise.
type TrendReport struct {
	Trend            Direction `json:"trend"`
	Urgency          Urgency   `json:"urgency"`
	SeveritySlope    *float64  `json:"severitySlope,omitempty"`
	TemperatureSlope *float64  `json:"temperatureSlope,omitempty"`
	Explanation      string    `json:"explanation"`
}

// #endregion trend-types

// #region config

// Config holds the slope thresholds for trend classification, calibrated
// per observation interval.
type Config struct {
	WorseningSeveritySlope float64 // severity slope above this is fast
	WorseningDeltaSlope    float64 // delta slope above this is fast
}

// DefaultConfig returns the baseline trend thresholds.
func DefaultConfig() Config {
	return Config{
		WorseningSeveritySlope: 0.2,
		WorseningDeltaSlope:    5,
	}
}

// #endregion config

// #region analyze

// Analyze fits first-order least-squares lines over the severity and delta
// sequences against the observation index, assuming uniform spacing, and
// classifies urgency top-down with first match winning. Fewer than two
// observations yields insufficient_data.
func Analyze(history []Observation) TrendReport {
	return analyze(history, DefaultConfig(), indexWeights(len(history)))
}

// AnalyzeTimed regresses against elapsed time instead of the observation
// index when every observation carries a timestamp, removing the uniform
// spacing assumption. Elapsed time is rescaled by the mean interval so the
// slope thresholds keep their per-observation calibration. Histories
// without full timestamps fall back to the index fit.
func AnalyzeTimed(history []Observation) TrendReport {
	xs := timeWeights(history)
	if xs == nil {
		return Analyze(history)
	}
	return analyze(history, DefaultConfig(), xs)
}

// AnalyzeWithConfig is Analyze under a caller-supplied calibration.
func AnalyzeWithConfig(history []Observation, config Config) TrendReport {
	return analyze(history, config, indexWeights(len(history)))
}

func analyze(history []Observation, config Config, xs []float64) TrendReport {
	if len(history) < 2 {
		return TrendReport{
			Trend:       TrendInsufficientData,
			Urgency:     UrgencyLow,
			Explanation: "Not enough historical data to determine trend.",
		}
	}

	severities := make([]float64, len(history))
	deltas := make([]float64, len(history))
	for i, obs := range history {
		severities[i] = obs.SeverityScore
		deltas[i] = obs.TemperatureDelta
	}

	_, severitySlope := stat.LinearRegression(xs, severities, nil, false)
	_, deltaSlope := stat.LinearRegression(xs, deltas, nil, false)

	var direction Direction
	var urgency Urgency
	switch {
	case severitySlope > config.WorseningSeveritySlope && deltaSlope > config.WorseningDeltaSlope:
		direction = TrendWorsening
		urgency = UrgencyHigh
	case severitySlope > 0:
		direction = TrendSlowWorsening
		urgency = UrgencyMedium
	default:
		direction = TrendStable
		urgency = UrgencyLow
	}

	sev := round2(severitySlope)
	del := round2(deltaSlope)
	return TrendReport{
		Trend:            direction,
		Urgency:          urgency,
		SeveritySlope:    &sev,
		TemperatureSlope: &del,
		Explanation: fmt.Sprintf(
			"Thermal severity and temperature delta show a %s pattern over time.",
			strings.ReplaceAll(string(direction), "_", " "),
		),
	}
}

// #endregion analyze

// #region weights

// indexWeights returns 0, 1, ..., n-1 as the independent variable.
func indexWeights(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// timeWeights returns elapsed time per observation rescaled to mean-interval
// units, or nil when any timestamp is missing or the span is degenerate.
func timeWeights(history []Observation) []float64 {
	if len(history) < 2 {
		return nil
	}
	for _, obs := range history {
		if obs.ObservedAt.IsZero() {
			return nil
		}
	}

	first := history[0].ObservedAt
	last := history[len(history)-1].ObservedAt
	span := last.Sub(first).Seconds()
	if span <= 0 {
		return nil
	}

	meanInterval := span / float64(len(history)-1)
	xs := make([]float64, len(history))
	for i, obs := range history {
		xs[i] = obs.ObservedAt.Sub(first).Seconds() / meanInterval
	}
	return xs
}

// #endregion weights

// #region helpers

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// #endregion helpers

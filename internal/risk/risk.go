// Package risk computes a numeric risk score from fault severity, historical
// impact, and the parser's stated confidence, independently of the safety
// engine.
package risk

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/abdulmannaan502/thermal-copilot/internal/guardrail"
	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/thermal"
)

// #region tier

// Tier is the three-level risk classification.
type Tier string

const (
	TierSafe     Tier = "SAFE"
	TierCaution  Tier = "CAUTION"
	TierCritical Tier = "CRITICAL"
)

// #endregion tier

// #region report

// RiskReport is the scored risk assessment. Score and uncertainty are
// rounded to 2 decimals for display; classification uses full precision.
type RiskReport struct {
	SeverityScore int     `json:"severityScore"`
	ImpactScore   int     `json:"impactScore"`
	Uncertainty   float64 `json:"uncertainty"`
	RiskScore     float64 `json:"riskScore"`
	RiskLevel     Tier    `json:"riskLevel"`
}

// #endregion report

// #region config

// Config holds the risk calibration constants. The tier boundaries are
// calibrated against the theoretical score range [1, 18].
type Config struct {
	CriticalAt             float64 // riskScore >= this is CRITICAL
	CautionAt              float64 // riskScore >= this is CAUTION
	HighImpactDowntime     float64 // mean downtime hours above this is impact 3
	HighImpactCost         float64 // mean repair cost above this is impact 3
	ModerateImpactDowntime float64
	ModerateImpactCost     float64
}

// DefaultConfig returns the baseline risk policy.
func DefaultConfig() Config {
	return Config{
		CriticalAt:             7,
		CautionAt:              4,
		HighImpactDowntime:     4,
		HighImpactCost:         1000,
		ModerateImpactDowntime: 2,
		ModerateImpactCost:     500,
	}
}

// #endregion config

// #region severity

// severityScore maps the fault risk level to 1-3, defaulting to 2 for
// unrecognized values. Matching is case-insensitive.
func severityScore(level thermal.RiskLevel) int {
	switch strings.ToLower(string(level)) {
	case "low":
		return 1
	case "medium":
		return 2
	case "high":
		return 3
	default:
		return 2
	}
}

// #endregion severity

// #region impact

// estimateImpact buckets historical consequence into 1-3 from the mean
// downtime and repair cost of retrieved incidents. Thresholds are checked
// high-first; an empty history yields minimal impact.
func estimateImpact(incidents []incident.Incident, config Config) int {
	if len(incidents) == 0 {
		return 1
	}

	downtime := make([]float64, len(incidents))
	cost := make([]float64, len(incidents))
	for i, inc := range incidents {
		downtime[i] = inc.DowntimeHours
		cost[i] = inc.RepairCostUsd
	}

	meanDowntime := stat.Mean(downtime, nil)
	meanCost := stat.Mean(cost, nil)

	switch {
	case meanDowntime > config.HighImpactDowntime || meanCost > config.HighImpactCost:
		return 3
	case meanDowntime > config.ModerateImpactDowntime || meanCost > config.ModerateImpactCost:
		return 2
	default:
		return 1
	}
}

// #endregion impact

// #region score

// Scorer computes risk reports under a fixed calibration.
type Scorer struct {
	config Config
}

// NewScorer creates a scorer with the given calibration.
func NewScorer(config Config) *Scorer {
	return &Scorer{config: config}
}

// Score computes severity*impact*(1+uncertainty) and classifies it.
// Pure function of its inputs; identical inputs reproduce identical scores.
func (s *Scorer) Score(
	fault thermal.FaultInterpretation,
	incidents []incident.Incident,
	decision guardrail.MaintenanceDecision,
) RiskReport {
	severity := severityScore(fault.RiskLevel)
	impact := estimateImpact(incidents, s.config)
	uncertainty := 1 - decision.Confidence

	riskScore := float64(severity) * float64(impact) * (1 + uncertainty)

	return RiskReport{
		SeverityScore: severity,
		ImpactScore:   impact,
		Uncertainty:   round2(uncertainty),
		RiskScore:     round2(riskScore),
		RiskLevel:     classify(riskScore, s.config),
	}
}

// Score applies the default calibration. See Scorer.Score.
func Score(
	fault thermal.FaultInterpretation,
	incidents []incident.Incident,
	decision guardrail.MaintenanceDecision,
) RiskReport {
	return NewScorer(DefaultConfig()).Score(fault, incidents, decision)
}

// classify maps a full-precision score to a tier, boundaries inclusive.
func classify(riskScore float64, config Config) Tier {
	switch {
	case riskScore >= config.CriticalAt:
		return TierCritical
	case riskScore >= config.CautionAt:
		return TierCaution
	default:
		return TierSafe
	}
}

// #endregion score

// #region helpers

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// #endregion helpers

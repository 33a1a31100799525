// Package safety re-derives an escalation verdict from the underlying
// sensor evidence, independently of whatever the model claimed.
package safety

import (
	"strings"

	"github.com/abdulmannaan502/thermal-copilot/internal/guardrail"
	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/thermal"
)

// #region plausibility

// CheckPlausibility flags physically implausible feature combinations.
// Every rule is evaluated; all firing issues are collected in order.
func CheckPlausibility(features thermal.AnomalyFeatures, config EngineConfig) []string {
	var issues []string

	if features.TemperatureDelta > config.MaxTemperatureDelta {
		issues = append(issues, "unrealistically high temperature delta")
	}
	if features.HotspotCount == 0 && features.SeverityScore > config.SeverityNeedingHotspot {
		issues = append(issues, "high severity without detected hotspot")
	}

	return issues
}

// #endregion plausibility

// #region evidence

// AssessEvidence classifies historical support from the retrieved incident
// count: 3 or more is strong, exactly 2 moderate, anything less weak.
func AssessEvidence(incidents []incident.Incident) EvidenceStrength {
	switch {
	case len(incidents) >= 3:
		return EvidenceStrong
	case len(incidents) == 2:
		return EvidenceModerate
	default:
		return EvidenceWeak
	}
}

// #endregion evidence

// #region action

// CheckAction returns false when an aggressive intervention is recommended
// without high-severity justification. Matching is case-insensitive substring.
func CheckAction(riskLevel thermal.RiskLevel, recommendedAction string, config EngineConfig) bool {
	if riskLevel != thermal.RiskLow && riskLevel != thermal.RiskMedium {
		return true
	}

	lower := strings.ToLower(recommendedAction)
	for _, word := range config.AggressiveActions {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

// #endregion action

// #region engine

// Engine composes the plausibility, evidence, and action checks into a
// single escalation verdict. Deterministic, no hidden state.
type Engine struct {
	config EngineConfig
}

// NewEngine creates a safety engine with the given policy.
func NewEngine(config EngineConfig) *Engine {
	return &Engine{config: config}
}

// Evaluate runs all checks and applies the escalation invariant: escalate
// exactly when issues exist, evidence is weak, or the action is unsafe.
func (e *Engine) Evaluate(
	features thermal.AnomalyFeatures,
	fault thermal.FaultInterpretation,
	incidents []incident.Incident,
	decision guardrail.MaintenanceDecision,
) SafetyReport {
	issues := CheckPlausibility(features, e.config)
	strength := AssessEvidence(incidents)
	actionSafe := CheckAction(fault.RiskLevel, decision.RecommendedAction, e.config)

	escalate := len(issues) > 0 || strength == EvidenceWeak || !actionSafe

	note := e.config.SafeNote
	if escalate {
		note = e.config.EscalateNote
	}

	return SafetyReport{
		SignalIssues:     issues,
		EvidenceStrength: strength,
		ActionSafe:       actionSafe,
		EscalateToHuman:  escalate,
		FinalNote:        note,
	}
}

// #endregion engine

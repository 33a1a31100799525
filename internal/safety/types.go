package safety

// #region evidence-strength

// EvidenceStrength classifies how much historical support backs a decision.
type EvidenceStrength string

const (
	EvidenceWeak     EvidenceStrength = "weak"
	EvidenceModerate EvidenceStrength = "moderate"
	EvidenceStrong   EvidenceStrength = "strong"
)

// #endregion evidence-strength

// #region safety-report

// SafetyReport is the escalation verdict composed from the individual
// safety checks. EscalateToHuman is true exactly when signal issues exist,
// evidence is weak, or the action is unsafe.
type SafetyReport struct {
	SignalIssues     []string         `json:"signalIssues"`
	EvidenceStrength EvidenceStrength `json:"evidenceStrength"`
	ActionSafe       bool             `json:"actionSafe"`
	EscalateToHuman  bool             `json:"escalateToHuman"`
	FinalNote        string           `json:"finalNote"`
}

// #endregion safety-report

// #region engine-config

// EngineConfig holds the calibration constants for the safety checks.
// The thresholds are policy defaults with no documented physical
// derivation; revisit with domain experts before changing them.
type EngineConfig struct {
	MaxTemperatureDelta    float64  // above this the delta is implausible
	SeverityNeedingHotspot float64  // severity above this requires a hotspot
	AggressiveActions      []string // action substrings needing high severity
	EscalateNote           string
	SafeNote               string
}

// DefaultEngineConfig returns the baseline safety policy.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxTemperatureDelta:    250,
		SeverityNeedingHotspot: 2,
		AggressiveActions:      []string{"replace", "shutdown"},
		EscalateNote:           "Decision requires human review due to signal uncertainty or insufficient evidence.",
		SafeNote:               "Decision considered safe for recommendation.",
	}
}

// #endregion engine-config

package thermal

// #region fault-types

// Fault enumerates the suspected fault hypotheses.
type Fault string

const (
	FaultBearingOverheating Fault = "bearing_overheating"
	FaultShaftMisalignment  Fault = "shaft_misalignment"
	FaultNormalOperation    Fault = "normal_operation"
	FaultUnknown            Fault = "unknown"
)

// RiskLevel is the coarse severity attached to a fault hypothesis.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FaultInterpretation is the engineering fault hypothesis derived from
// anomaly features. The risk level field is the load-bearing one downstream;
// reasoning and next step are advisory text.
type FaultInterpretation struct {
	SuspectedFault Fault     `json:"suspectedFault"`
	RiskLevel      RiskLevel `json:"riskLevel"`
	Reasoning      string    `json:"reasoning"`
	NextStep       string    `json:"nextStep"`
}

// #endregion fault-types

// #region interpret

// Interpret maps anomaly features to a fault hypothesis via a fixed rule
// table, checked top-down with first match winning.
func Interpret(features AnomalyFeatures) FaultInterpretation {
	switch {
	case features.HotspotCount == 1 && features.SeverityScore > 0.8 && features.TemperatureDelta > 40:
		return FaultInterpretation{
			SuspectedFault: FaultBearingOverheating,
			RiskLevel:      RiskHigh,
			Reasoning: "A localized high-temperature region near the bearing zone " +
				"indicates excessive friction, likely caused by bearing wear " +
				"or lubrication failure.",
			NextStep: "Inspect bearing condition and lubrication. " +
				"Plan bearing replacement if abnormal wear is confirmed.",
		}
	case features.HotspotCount >= 1 && features.SeverityScore > 0.4 && features.SeverityScore <= 0.8:
		return FaultInterpretation{
			SuspectedFault: FaultShaftMisalignment,
			RiskLevel:      RiskMedium,
			Reasoning: "Elongated or moderately severe thermal anomalies " +
				"suggest uneven load distribution, commonly caused by shaft misalignment.",
			NextStep: "Perform shaft alignment check and vibration analysis.",
		}
	default:
		return FaultInterpretation{
			SuspectedFault: FaultNormalOperation,
			RiskLevel:      RiskLow,
			Reasoning:      "Observed temperature variations are within acceptable operating limits.",
			NextStep:       "Continue routine monitoring.",
		}
	}
}

// #endregion interpret

package guardrail

// #region failure-mode

// FailureMode enumerates the failure modes the parser can extract from
// model output.
type FailureMode string

const (
	FailureBearingWear        FailureMode = "bearing_wear"
	FailureBearingOverheating FailureMode = "bearing_overheating"
	FailureUnknown            FailureMode = "unknown"
)

// #endregion failure-mode

// #region decision

// MaintenanceDecision is the structured decision extracted from raw model
// text. It is always fully populated: parsing degrades to conservative
// defaults instead of failing.
type MaintenanceDecision struct {
	FailureMode       FailureMode `json:"failureMode"`
	Reasoning         string      `json:"reasoning"`
	RecommendedAction string      `json:"recommendedAction"`
	DowntimeHoursMin  int         `json:"downtimeHoursMin"`
	DowntimeHoursMax  int         `json:"downtimeHoursMax"`
	RepairCostUsdMin  int         `json:"repairCostUsdMin"`
	RepairCostUsdMax  int         `json:"repairCostUsdMax"`
	Confidence        float64     `json:"confidence"`
}

// #endregion decision

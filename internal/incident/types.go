package incident

// #region incident

// Incident is one historical maintenance record from the corpus. Retrieval
// returns them in relevance order.
type Incident struct {
	ID                  string  `json:"id,omitempty"`
	EquipmentType       string  `json:"equipmentType,omitempty"`
	ThermalPattern      string  `json:"thermalPattern"`
	ObservedTemperature string  `json:"observedTemperature,omitempty"`
	FailureMode         string  `json:"failureMode"`
	RootCause           string  `json:"rootCause,omitempty"`
	ActionTaken         string  `json:"actionTaken"`
	DowntimeHours       float64 `json:"downtimeHours"`
	RepairCostUsd       float64 `json:"repairCostUsd"`
}

// #endregion incident

// #region retriever-config

// RetrieverConfig holds limits for keyword retrieval over the corpus.
type RetrieverConfig struct {
	TopK          int // default result limit when the caller passes <= 0
	MaxPatternLen int // skip records whose pattern text exceeds this, 0 = no cap
}

// DefaultRetrieverConfig returns sensible retrieval defaults.
func DefaultRetrieverConfig() RetrieverConfig {
	return RetrieverConfig{
		TopK:          3,
		MaxPatternLen: 2000,
	}
}

// #endregion retriever-config

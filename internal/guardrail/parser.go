// Package guardrail extracts a structured maintenance decision from
// untrusted model output. Parse is a total function: arbitrary, empty, or
// adversarial text degrades to conservative defaults, never an error.
package guardrail

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// #region parser-config

// ParserConfig is the static decision policy applied around text extraction.
// The downtime and cost ranges are policy defaults, not parsed from text.
type ParserConfig struct {
	ConfidenceFallback float64 // used when no parseable confidence is found
	ActionGateFloor    float64 // below this confidence the action is overridden
	DowntimeHoursMin   int
	DowntimeHoursMax   int
	RepairCostUsdMin   int
	RepairCostUsdMax   int
	GatedAction        string // forced action under the gate floor
	DefaultAction      string
	DefaultReasoning   string
}

// DefaultParserConfig returns the baseline decision policy.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		ConfidenceFallback: 0.5,
		ActionGateFloor:    0.6,
		DowntimeHoursMin:   2,
		DowntimeHoursMax:   6,
		RepairCostUsdMin:   300,
		RepairCostUsdMax:   1200,
		GatedAction:        "Manual inspection required before any maintenance decision.",
		DefaultAction: "Inspect bearing condition and lubrication. " +
			"Prepare for bearing replacement if abnormal wear is confirmed.",
		DefaultReasoning: "Localized high-temperature anomaly combined with historical " +
			"maintenance incidents indicates bearing-related degradation.",
	}
}

// #endregion parser-config

// #region fault-tokens

// faultTokens is the ordered extraction table for failure modes; earlier
// entries win. bearing_wear must precede bearing_overheating.
var faultTokens = []struct {
	token string
	mode  FailureMode
}{
	{"bearing_wear", FailureBearingWear},
	{"bearing_overheating", FailureBearingOverheating},
}

// confidencePattern matches "confidence", an optional "level", optional
// ":" or "-", then a decimal in [0.0, 1.0].
var confidencePattern = regexp.MustCompile(`(?i)confidence\s*(?:level)?\s*[:\-]?\s*(0?\.\d+|1\.0|0\.0)`)

// #endregion fault-tokens

// #region parser

// Parser turns raw model text into a MaintenanceDecision under a fixed policy.
type Parser struct {
	config ParserConfig
}

// NewParser creates a parser with the given policy.
func NewParser(config ParserConfig) *Parser {
	return &Parser{config: config}
}

// Parse extracts a decision from raw model text. It never fails: missing or
// malformed fields fall back to the configured defaults, and a confidence
// below the gate floor forces the conservative action.
func (p *Parser) Parse(raw string) MaintenanceDecision {
	lower := strings.ToLower(raw)

	mode := FailureUnknown
	for _, ft := range faultTokens {
		if strings.Contains(lower, ft.token) {
			mode = ft.mode
			break
		}
	}

	confidence := p.config.ConfidenceFallback
	if m := confidencePattern.FindStringSubmatch(raw); m != nil {
		confidence = safeConfidence(m[1], p.config.ConfidenceFallback)
	}
	confidence = clamp01(confidence)

	// gate on the raw parsed value; rounding is presentation only
	action := p.config.DefaultAction
	if confidence < p.config.ActionGateFloor {
		action = p.config.GatedAction
	}

	return MaintenanceDecision{
		FailureMode:       mode,
		Reasoning:         p.config.DefaultReasoning,
		RecommendedAction: action,
		DowntimeHoursMin:  p.config.DowntimeHoursMin,
		DowntimeHoursMax:  p.config.DowntimeHoursMax,
		RepairCostUsdMin:  p.config.RepairCostUsdMin,
		RepairCostUsdMax:  p.config.RepairCostUsdMax,
		Confidence:        round2(confidence),
	}
}

// Parse applies the default policy. See Parser.Parse.
func Parse(raw string) MaintenanceDecision {
	return NewParser(DefaultParserConfig()).Parse(raw)
}

// #endregion parser

// #region helpers

// safeConfidence parses a captured confidence value, falling back when the
// value is unparseable or outside [0, 1].
func safeConfidence(value string, fallback float64) float64 {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 || v > 1 {
		return fallback
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// #endregion helpers

// Package replay re-runs recorded model outputs through the guard layer
// deterministically. It is the regression harness for guardrail, safety,
// and risk policy changes: fixtures capture raw model text plus the
// evidence that was live at the time, and replay must reproduce the
// recorded verdicts.
package replay

import (
	"github.com/abdulmannaan502/thermal-copilot/internal/guardrail"
	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/pipeline"
	"github.com/abdulmannaan502/thermal-copilot/internal/risk"
	"github.com/abdulmannaan502/thermal-copilot/internal/safety"
	"github.com/abdulmannaan502/thermal-copilot/internal/thermal"
	"github.com/abdulmannaan502/thermal-copilot/internal/trend"
)

// #region types
// Case is a single recorded assessment for replay.
type Case struct {
	CaseID       string
	Features     thermal.AnomalyFeatures
	Incidents    []incident.Incident
	RawModelText string
	Observations []trend.Observation // session history at assessment time
}

// Config bundles the guard policies for a replay run.
type Config struct {
	Parser guardrail.ParserConfig
	Engine safety.EngineConfig
	Risk   risk.Config
}

// DefaultConfig returns production defaults for all three guard stages.
func DefaultConfig() Config {
	return Config{
		Parser: guardrail.DefaultParserConfig(),
		Engine: safety.DefaultEngineConfig(),
		Risk:   risk.DefaultConfig(),
	}
}

// Result captures the outcome of replaying one case through the guard layer.
type Result struct {
	CaseID   string
	Fault    thermal.FaultInterpretation
	Decision guardrail.MaintenanceDecision
	Safety   safety.SafetyReport
	Risk     risk.RiskReport
	Trend    trend.TrendReport
	Verdict  pipeline.Verdict
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalCases  int
	Accepts     int
	Monitors    int
	Escalations int
}

// #endregion types

// #region replay
// Replay runs each case through interpretation, parsing, safety, risk, and
// trend, combining the verdict exactly as the live pipeline does. Operates
// entirely in-memory; identical inputs reproduce identical results.
func Replay(cases []Case, config Config) []Result {
	parser := guardrail.NewParser(config.Parser)
	engine := safety.NewEngine(config.Engine)
	scorer := risk.NewScorer(config.Risk)

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		fault := thermal.Interpret(c.Features)
		decision := parser.Parse(c.RawModelText)
		safetyReport := engine.Evaluate(c.Features, fault, c.Incidents, decision)
		riskReport := scorer.Score(fault, c.Incidents, decision)
		trendReport := trend.AnalyzeTimed(c.Observations)

		results = append(results, Result{
			CaseID:   c.CaseID,
			Fault:    fault,
			Decision: decision,
			Safety:   safetyReport,
			Risk:     riskReport,
			Trend:    trendReport,
			Verdict:  pipeline.CombineVerdict(safetyReport, riskReport, trendReport),
		})
	}
	return results
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{TotalCases: len(results)}
	for _, r := range results {
		switch r.Verdict {
		case pipeline.VerdictAccept:
			s.Accepts++
		case pipeline.VerdictMonitor:
			s.Monitors++
		case pipeline.VerdictEscalate:
			s.Escalations++
		}
	}
	return s
}

// #endregion replay

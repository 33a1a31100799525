// Package pipeline coordinates one full assessment: feature interpretation,
// evidence retrieval, model generation, and the guard layer that decides
// whether the model's recommendation can be trusted.
package pipeline

// #region imports
import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abdulmannaan502/thermal-copilot/internal/audit"
	"github.com/abdulmannaan502/thermal-copilot/internal/guardrail"
	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/prompt"
	"github.com/abdulmannaan502/thermal-copilot/internal/risk"
	"github.com/abdulmannaan502/thermal-copilot/internal/safety"
	"github.com/abdulmannaan502/thermal-copilot/internal/thermal"
	"github.com/abdulmannaan502/thermal-copilot/internal/trend"
)

// #endregion

// #region collaborators

// Generator produces raw model text for a prompt. Satisfied by
// inference.Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EvidenceRetriever finds historical incidents similar to a query.
// Satisfied by incident.Retriever.
type EvidenceRetriever interface {
	Retrieve(query string, limit int) ([]incident.Incident, error)
}

// ObservationLog records and replays per-session observations.
// Satisfied by history.Store.
type ObservationLog interface {
	Append(sessionID string, obs trend.Observation) error
	Session(sessionID string) ([]trend.Observation, error)
}

// #endregion collaborators

// #region verdict

// Verdict is the combined recommendation for the operator.
type Verdict string

const (
	VerdictAccept   Verdict = "accept"
	VerdictMonitor  Verdict = "monitor"
	VerdictEscalate Verdict = "escalate"
)

// CombineVerdict folds the three guard outputs into one verdict.
// Escalation always wins; trend urgency alone can keep equipment under
// watch even when the snapshot looks safe.
func CombineVerdict(safetyReport safety.SafetyReport, riskReport risk.RiskReport, trendReport trend.TrendReport) Verdict {
	switch {
	case safetyReport.EscalateToHuman || riskReport.RiskLevel == risk.TierCritical:
		return VerdictEscalate
	case riskReport.RiskLevel == risk.TierCaution || trendReport.Urgency != trend.UrgencyLow:
		return VerdictMonitor
	default:
		return VerdictAccept
	}
}

// #endregion verdict

// #region report

// Report is the full output of one assessment.
type Report struct {
	AssessmentID string                        `json:"assessmentId"`
	SessionID    string                        `json:"sessionId"`
	Features     thermal.AnomalyFeatures       `json:"features"`
	Fault        thermal.FaultInterpretation   `json:"fault"`
	Incidents    []incident.Incident           `json:"incidents"`
	RawModelText string                        `json:"rawModelText"`
	Decision     guardrail.MaintenanceDecision `json:"decision"`
	Safety       safety.SafetyReport           `json:"safety"`
	Risk         risk.RiskReport               `json:"risk"`
	Trend        trend.TrendReport             `json:"trend"`
	Verdict      Verdict                       `json:"verdict"`
	Degraded     string                        `json:"degraded,omitempty"`
	GeneratedAt  time.Time                     `json:"generatedAt"`
}

// #endregion report

// #region config

// Config controls the assessment flow.
type Config struct {
	RetrievalLimit int
}

// DefaultConfig returns the production flow settings.
func DefaultConfig() Config {
	return Config{RetrievalLimit: 3}
}

// #endregion config

// #region pipeline

// Pipeline wires the collaborators for repeated assessments. The audit
// database is optional; all other collaborators are required.
type Pipeline struct {
	config    Config
	generator Generator
	retriever EvidenceRetriever
	history   ObservationLog
	safety    *safety.Engine
	parser    *guardrail.Parser
	scorer    *risk.Scorer
	auditDB   *sql.DB
}

// New creates a fully wired pipeline with default guard policies.
func New(generator Generator, retriever EvidenceRetriever, history ObservationLog) *Pipeline {
	return &Pipeline{
		config:    DefaultConfig(),
		generator: generator,
		retriever: retriever,
		history:   history,
		safety:    safety.NewEngine(safety.DefaultEngineConfig()),
		parser:    guardrail.NewParser(guardrail.DefaultParserConfig()),
		scorer:    risk.NewScorer(risk.DefaultConfig()),
	}
}

// WithAudit enables audit logging on the given database.
func (p *Pipeline) WithAudit(db *sql.DB) *Pipeline {
	p.auditDB = db
	return p
}

// WithConfig overrides the flow settings.
func (p *Pipeline) WithConfig(config Config) *Pipeline {
	p.config = config
	return p
}

// #endregion pipeline

// #region assess

// Assess runs one full assessment over extracted features. Sidecar
// failures degrade to parsing an empty response rather than aborting:
// the parser's conservative fallback then forces manual inspection.
func (p *Pipeline) Assess(ctx context.Context, sessionID string, features thermal.AnomalyFeatures) (Report, error) {
	fault := thermal.Interpret(features)

	incidents, err := p.retriever.Retrieve(evidenceQuery(fault), p.config.RetrievalLimit)
	if err != nil {
		return Report{}, fmt.Errorf("retrieve evidence: %w", err)
	}

	var degraded string
	text, err := p.generator.Generate(ctx, prompt.Build(features, fault, incidents))
	if err != nil {
		log.Printf("[PIPE] generate failed, degrading to empty response: %v", err)
		degraded = fmt.Sprintf("inference unavailable: %v", err)
		text = ""
	}

	return p.guard(sessionID, features, fault, incidents, text, degraded)
}

// AssessRecorded runs the guard layer over an already-generated model
// response, as submitted over the HTTP API or exported from a recorded
// session. No sidecar call is made; incidents are retrieved when the
// caller supplies none.
func (p *Pipeline) AssessRecorded(sessionID string, features thermal.AnomalyFeatures, incidents []incident.Incident, rawText string) (Report, error) {
	fault := thermal.Interpret(features)

	if incidents == nil {
		var err error
		incidents, err = p.retriever.Retrieve(evidenceQuery(fault), p.config.RetrievalLimit)
		if err != nil {
			return Report{}, fmt.Errorf("retrieve evidence: %w", err)
		}
	}

	return p.guard(sessionID, features, fault, incidents, rawText, "")
}

// guard is the shared back half of an assessment: parse, safety and risk
// in either order, history append, trend, combined verdict, audit.
func (p *Pipeline) guard(
	sessionID string,
	features thermal.AnomalyFeatures,
	fault thermal.FaultInterpretation,
	incidents []incident.Incident,
	text string,
	degraded string,
) (Report, error) {
	decision := p.parser.Parse(text)
	safetyReport := p.safety.Evaluate(features, fault, incidents, decision)
	riskReport := p.scorer.Score(fault, incidents, decision)

	if err := p.history.Append(sessionID, trend.Observation{
		SeverityScore:    features.SeverityScore,
		TemperatureDelta: features.TemperatureDelta,
		ObservedAt:       time.Now().UTC(),
	}); err != nil {
		return Report{}, fmt.Errorf("record observation: %w", err)
	}
	observations, err := p.history.Session(sessionID)
	if err != nil {
		return Report{}, fmt.Errorf("load session history: %w", err)
	}
	trendReport := trend.AnalyzeTimed(observations)

	report := Report{
		AssessmentID: uuid.New().String(),
		SessionID:    sessionID,
		Features:     features,
		Fault:        fault,
		Incidents:    incidents,
		RawModelText: text,
		Decision:     decision,
		Safety:       safetyReport,
		Risk:         riskReport,
		Trend:        trendReport,
		Verdict:      CombineVerdict(safetyReport, riskReport, trendReport),
		Degraded:     degraded,
		GeneratedAt:  time.Now().UTC(),
	}

	log.Printf("[PIPE] session=%s fault=%s risk=%s trend=%s verdict=%s",
		sessionID, fault.SuspectedFault, riskReport.RiskLevel, trendReport.Trend, report.Verdict)

	p.logAudit(report)
	return report, nil
}

// AssessImage extracts features from a thermal image first, then assesses.
func (p *Pipeline) AssessImage(ctx context.Context, sessionID, imagePath string) (Report, error) {
	grid, err := thermal.LoadImage(imagePath)
	if err != nil {
		return Report{}, fmt.Errorf("load thermal image: %w", err)
	}
	features := thermal.DetectAnomaly(grid, thermal.DefaultDetectorConfig())
	return p.Assess(ctx, sessionID, features)
}

// evidenceQuery turns the rule-based interpretation into retrieval keywords.
func evidenceQuery(fault thermal.FaultInterpretation) string {
	return strings.ReplaceAll(string(fault.SuspectedFault), "_", " ") + " " + fault.Reasoning
}

// logAudit is best-effort; a failed audit write never fails the assessment.
func (p *Pipeline) logAudit(report Report) {
	if p.auditDB == nil {
		return
	}
	err := audit.Log(p.auditDB, audit.Entry{
		AssessmentID: report.AssessmentID,
		SessionID:    report.SessionID,
		Verdict:      string(report.Verdict),
		RiskLevel:    string(report.Risk.RiskLevel),
		Escalated:    report.Safety.EscalateToHuman,
		Reason:       report.Safety.FinalNote,
		CreatedAt:    report.GeneratedAt,
	})
	if err != nil {
		log.Printf("[PIPE] failed to record audit entry: %v", err)
	}
}

// #endregion assess

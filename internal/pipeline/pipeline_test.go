package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/risk"
	"github.com/abdulmannaan502/thermal-copilot/internal/safety"
	"github.com/abdulmannaan502/thermal-copilot/internal/thermal"
	"github.com/abdulmannaan502/thermal-copilot/internal/trend"
)

// #region stubs
type stubGenerator struct {
	text       string
	err        error
	lastPrompt string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.text, g.err
}

type stubRetriever struct {
	incidents []incident.Incident
	err       error
	lastQuery string
}

func (r *stubRetriever) Retrieve(query string, _ int) ([]incident.Incident, error) {
	r.lastQuery = query
	return r.incidents, r.err
}

type memLog struct {
	sessions map[string][]trend.Observation
}

func newMemLog() *memLog {
	return &memLog{sessions: make(map[string][]trend.Observation)}
}

func (m *memLog) Append(sessionID string, obs trend.Observation) error {
	m.sessions[sessionID] = append(m.sessions[sessionID], obs)
	return nil
}

func (m *memLog) Session(sessionID string) ([]trend.Observation, error) {
	return m.sessions[sessionID], nil
}

// #endregion stubs

// #region fixtures
func highRiskFeatures() thermal.AnomalyFeatures {
	return thermal.AnomalyFeatures{
		MeanTemperature:  60,
		MaxTemperature:   130,
		TemperatureDelta: 70,
		HotspotCount:     1,
		SeverityScore:    1.2,
	}
}

func minorIncidents(n int) []incident.Incident {
	out := make([]incident.Incident, n)
	for i := range out {
		out[i] = incident.Incident{
			ThermalPattern: "bearing hotspot",
			FailureMode:    "bearing_wear",
			ActionTaken:    "inspected and relubricated",
			DowntimeHours:  1,
			RepairCostUsd:  100,
		}
	}
	return out
}

const confidentModelText = "Most likely failure mode: bearing_wear\n" +
	"Recommended action: inspect bearing\n" +
	"Confidence: 1.0"

// #endregion fixtures

func TestAssessAcceptPath(t *testing.T) {
	gen := &stubGenerator{text: confidentModelText}
	ret := &stubRetriever{incidents: minorIncidents(3)}
	p := New(gen, ret, newMemLog())

	report, err := p.Assess(context.Background(), "motor-7", highRiskFeatures())
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	if report.Verdict != VerdictAccept {
		t.Fatalf("expected accept, got %s: %+v", report.Verdict, report)
	}
	if report.Safety.EscalateToHuman {
		t.Fatalf("unexpected escalation: %+v", report.Safety)
	}
	if report.Risk.RiskLevel != risk.TierSafe {
		t.Fatalf("expected SAFE risk, got %s (score %.2f)", report.Risk.RiskLevel, report.Risk.RiskScore)
	}
	if report.Trend.Trend != trend.TrendInsufficientData {
		t.Fatalf("first assessment should lack trend data, got %s", report.Trend.Trend)
	}
	if report.AssessmentID == "" || report.SessionID != "motor-7" {
		t.Fatalf("report identity incomplete: %+v", report)
	}
	if report.Degraded != "" {
		t.Fatalf("unexpected degradation marker %q", report.Degraded)
	}
}

func TestAssessBuildsGroundedPromptAndQuery(t *testing.T) {
	gen := &stubGenerator{text: confidentModelText}
	ret := &stubRetriever{incidents: minorIncidents(3)}
	p := New(gen, ret, newMemLog())

	if _, err := p.Assess(context.Background(), "motor-7", highRiskFeatures()); err != nil {
		t.Fatalf("assess: %v", err)
	}

	if !strings.Contains(ret.lastQuery, "bearing overheating") {
		t.Errorf("query should carry the suspected fault, got %q", ret.lastQuery)
	}
	if !strings.Contains(gen.lastPrompt, "Incident 1:") {
		t.Error("prompt should enumerate retrieved incidents")
	}
	if !strings.Contains(gen.lastPrompt, "Do NOT invent facts") {
		t.Error("prompt should carry the grounding rules")
	}
}

func TestAssessDegradesOnGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("sidecar down")}
	ret := &stubRetriever{incidents: minorIncidents(3)}
	p := New(gen, ret, newMemLog())

	report, err := p.Assess(context.Background(), "motor-7", highRiskFeatures())
	if err != nil {
		t.Fatalf("generator failure must not abort the assessment: %v", err)
	}

	if report.Degraded == "" {
		t.Fatal("expected degradation marker")
	}
	if report.RawModelText != "" {
		t.Fatalf("expected empty model text, got %q", report.RawModelText)
	}
	if report.Decision.Confidence != 0.5 {
		t.Fatalf("expected fallback confidence, got %.2f", report.Decision.Confidence)
	}
	if !strings.Contains(report.Decision.RecommendedAction, "Manual inspection") {
		t.Fatalf("low confidence must gate the action, got %q", report.Decision.RecommendedAction)
	}
	if report.Verdict == VerdictAccept {
		t.Fatal("degraded assessment must not be accepted outright")
	}
}

func TestAssessEscalatesOnWeakEvidence(t *testing.T) {
	gen := &stubGenerator{text: confidentModelText}
	ret := &stubRetriever{incidents: minorIncidents(1)}
	p := New(gen, ret, newMemLog())

	report, err := p.Assess(context.Background(), "motor-7", highRiskFeatures())
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	if report.Verdict != VerdictEscalate {
		t.Fatalf("expected escalate, got %s", report.Verdict)
	}
	if report.Safety.EvidenceStrength != safety.EvidenceWeak {
		t.Fatalf("expected weak evidence, got %s", report.Safety.EvidenceStrength)
	}
}

func TestAssessRetrieverFailureAborts(t *testing.T) {
	gen := &stubGenerator{text: confidentModelText}
	ret := &stubRetriever{err: errors.New("corpus unavailable")}
	p := New(gen, ret, newMemLog())

	if _, err := p.Assess(context.Background(), "motor-7", highRiskFeatures()); err == nil {
		t.Fatal("expected error when the corpus is unavailable")
	}
}

func TestAssessAccumulatesTrendAcrossSession(t *testing.T) {
	gen := &stubGenerator{text: confidentModelText}
	ret := &stubRetriever{incidents: minorIncidents(3)}
	p := New(gen, ret, newMemLog())

	severities := []float64{0.5, 0.8, 1.2, 1.6}
	deltas := []float64{20, 30, 45, 60}

	var last Report
	for i := range severities {
		features := highRiskFeatures()
		features.SeverityScore = severities[i]
		features.TemperatureDelta = deltas[i]

		report, err := p.Assess(context.Background(), "motor-7", features)
		if err != nil {
			t.Fatalf("assess %d: %v", i, err)
		}
		last = report
	}

	if last.Trend.Trend != trend.TrendWorsening {
		t.Fatalf("expected worsening trend, got %s", last.Trend.Trend)
	}
	if last.Trend.Urgency != trend.UrgencyHigh {
		t.Fatalf("expected high urgency, got %s", last.Trend.Urgency)
	}
	if last.Verdict == VerdictAccept {
		t.Fatal("worsening equipment must stay under watch")
	}
}

func TestCombineVerdictTable(t *testing.T) {
	cases := []struct {
		name    string
		safety  safety.SafetyReport
		risk    risk.RiskReport
		trend   trend.TrendReport
		verdict Verdict
	}{
		{
			name:    "all clear",
			risk:    risk.RiskReport{RiskLevel: risk.TierSafe},
			trend:   trend.TrendReport{Urgency: trend.UrgencyLow},
			verdict: VerdictAccept,
		},
		{
			name:    "escalation wins over everything",
			safety:  safety.SafetyReport{EscalateToHuman: true},
			risk:    risk.RiskReport{RiskLevel: risk.TierSafe},
			trend:   trend.TrendReport{Urgency: trend.UrgencyLow},
			verdict: VerdictEscalate,
		},
		{
			name:    "critical risk escalates",
			risk:    risk.RiskReport{RiskLevel: risk.TierCritical},
			trend:   trend.TrendReport{Urgency: trend.UrgencyLow},
			verdict: VerdictEscalate,
		},
		{
			name:    "caution risk monitors",
			risk:    risk.RiskReport{RiskLevel: risk.TierCaution},
			trend:   trend.TrendReport{Urgency: trend.UrgencyLow},
			verdict: VerdictMonitor,
		},
		{
			name:    "trend urgency alone monitors",
			risk:    risk.RiskReport{RiskLevel: risk.TierSafe},
			trend:   trend.TrendReport{Urgency: trend.UrgencyMedium},
			verdict: VerdictMonitor,
		},
	}

	for _, c := range cases {
		if got := CombineVerdict(c.safety, c.risk, c.trend); got != c.verdict {
			t.Errorf("%s: expected %s, got %s", c.name, c.verdict, got)
		}
	}
}

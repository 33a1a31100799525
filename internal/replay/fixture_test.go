package replay

import (
	"path/filepath"
	"testing"
)

// #region fixture-tests

// TestFixture_BearingSession loads the bearing_session fixture, runs Replay(),
// and compares each case's verdict against the expected verdict. This is the
// primary regression test — if parser/safety/risk policy changes, this
// catches drift.
func TestFixture_BearingSession(t *testing.T) {
	fixturePath := filepath.Join("testdata", "bearing_session.json")
	f, err := LoadFixture(fixturePath)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	results := Replay(f.ToCases(), DefaultConfig())

	if len(results) != len(f.ExpectedResults) {
		t.Fatalf("expected %d results, got %d", len(f.ExpectedResults), len(results))
	}

	for i, expected := range f.ExpectedResults {
		actual := results[i]
		if actual.CaseID != expected.CaseID {
			t.Errorf("case %d: expected caseId=%s, got %s", i, expected.CaseID, actual.CaseID)
		}
		if string(actual.Verdict) != expected.Verdict {
			t.Errorf("case %d (%s): expected verdict=%s, got %s (risk %.2f, note %q)",
				i, expected.CaseID, expected.Verdict, actual.Verdict, actual.Risk.RiskScore, actual.Safety.FinalNote)
		}
		if string(actual.Risk.RiskLevel) != expected.RiskLevel {
			t.Errorf("case %d (%s): expected riskLevel=%s, got %s (score %.2f)",
				i, expected.CaseID, expected.RiskLevel, actual.Risk.RiskLevel, actual.Risk.RiskScore)
		}
		if actual.Safety.EscalateToHuman != expected.Escalate {
			t.Errorf("case %d (%s): expected escalate=%v, got %v (issues %v)",
				i, expected.CaseID, expected.Escalate, actual.Safety.EscalateToHuman, actual.Safety.SignalIssues)
		}
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join("testdata", "does_not_exist.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

// #endregion fixture-tests

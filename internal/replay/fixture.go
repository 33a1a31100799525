package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/thermal"
	"github.com/abdulmannaan502/thermal-copilot/internal/trend"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string               `json:"description"`
	Cases           []FixtureCase        `json:"cases"`
	ExpectedResults []FixtureExpectation `json:"expectedResults"`
}

// FixtureCase mirrors Case with JSON tags. Domain types already carry the
// wire-format field names, so they embed directly.
type FixtureCase struct {
	CaseID       string                  `json:"caseId"`
	Features     thermal.AnomalyFeatures `json:"features"`
	Incidents    []incident.Incident     `json:"incidents"`
	RawModelText string                  `json:"rawModelText"`
	Observations []trend.Observation     `json:"observations,omitempty"`
}

// FixtureExpectation captures the expected verdict per case.
type FixtureExpectation struct {
	CaseID    string `json:"caseId"`
	Verdict   string `json:"verdict"`
	RiskLevel string `json:"riskLevel"`
	Escalate  bool   `json:"escalate"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToCase converts a FixtureCase to a domain Case.
func (fc *FixtureCase) ToCase() Case {
	return Case{
		CaseID:       fc.CaseID,
		Features:     fc.Features,
		Incidents:    fc.Incidents,
		RawModelText: fc.RawModelText,
		Observations: fc.Observations,
	}
}

// ToCases converts every fixture case to its domain form.
func (f *Fixture) ToCases() []Case {
	cases := make([]Case, len(f.Cases))
	for i := range f.Cases {
		cases[i] = f.Cases[i].ToCase()
	}
	return cases
}

// #endregion fixture-loader

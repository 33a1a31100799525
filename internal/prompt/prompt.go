// Package prompt renders the grounded instruction sent to the language
// model: anomaly features, the rule-based interpretation, and the retrieved
// incident evidence, followed by a fixed task list.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/thermal"
)

// #region template
const header = `You are an industrial maintenance decision-support copilot.
You must rely ONLY on the provided anomaly data and historical incidents.
Do NOT invent facts. If uncertain, state uncertainty.`

const taskList = `TASK:
1. Identify the most likely failure mode
2. Explain reasoning clearly (2-3 sentences)
3. Recommend safe next inspection or maintenance actions
4. Estimate downtime range (hours)
5. Estimate repair cost range (USD)
6. Provide confidence level (0-1)

Respond in structured bullet points.`

// #endregion template

// #region build
// Build renders the full prompt. Features and interpretation are embedded
// as JSON so the model sees exactly the values the guardrails will check.
func Build(
	features thermal.AnomalyFeatures,
	fault thermal.FaultInterpretation,
	incidents []incident.Incident,
) string {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n\nThermal anomaly features:\n")
	b.WriteString(asJSON(features))
	b.WriteString("\n\nInitial engineering interpretation:\n")
	b.WriteString(asJSON(fault))
	b.WriteString("\n\nRetrieved historical maintenance incidents:\n")
	b.WriteString(evidenceText(incidents))
	b.WriteString("\n")
	b.WriteString(taskList)

	return b.String()
}

// evidenceText numbers incidents from 1 in retrieval order.
func evidenceText(incidents []incident.Incident) string {
	if len(incidents) == 0 {
		return "(no similar incidents found)\n"
	}

	var b strings.Builder
	for i, inc := range incidents {
		fmt.Fprintf(&b, "\nIncident %d:\n", i+1)
		fmt.Fprintf(&b, "- Thermal pattern: %s\n", inc.ThermalPattern)
		fmt.Fprintf(&b, "- Failure mode: %s\n", inc.FailureMode)
		fmt.Fprintf(&b, "- Action taken: %s\n", inc.ActionTaken)
		fmt.Fprintf(&b, "- Downtime hours: %g\n", inc.DowntimeHours)
		fmt.Fprintf(&b, "- Repair cost USD: %g\n", inc.RepairCostUsd)
	}
	return b.String()
}

func asJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

// #endregion build

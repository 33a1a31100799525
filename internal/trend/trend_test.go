package trend

import (
	"testing"
	"time"
)

func observations(severities, deltas []float64) []Observation {
	out := make([]Observation, len(severities))
	for i := range out {
		out[i] = Observation{SeverityScore: severities[i], TemperatureDelta: deltas[i]}
	}
	return out
}

func TestAnalyzeInsufficientData(t *testing.T) {
	for _, history := range [][]Observation{nil, observations([]float64{1.2}, []float64{40})} {
		report := Analyze(history)

		if report.Trend != TrendInsufficientData {
			t.Fatalf("expected insufficient_data, got %s", report.Trend)
		}
		if report.Urgency != UrgencyLow {
			t.Fatalf("expected low urgency, got %s", report.Urgency)
		}
		if report.SeveritySlope != nil || report.TemperatureSlope != nil {
			t.Fatalf("expected nil slopes without a fit: %+v", report)
		}
		if report.Explanation != "Not enough historical data to determine trend." {
			t.Fatalf("unexpected explanation %q", report.Explanation)
		}
	}
}

func TestAnalyzeWorsening(t *testing.T) {
	history := observations(
		[]float64{0.5, 0.8, 1.2, 1.6},
		[]float64{20, 30, 45, 60},
	)

	report := Analyze(history)

	if report.Trend != TrendWorsening {
		t.Fatalf("expected worsening, got %s", report.Trend)
	}
	if report.Urgency != UrgencyHigh {
		t.Fatalf("expected high urgency, got %s", report.Urgency)
	}
	if report.SeveritySlope == nil || *report.SeveritySlope != 0.37 {
		t.Fatalf("expected severity slope 0.37, got %v", report.SeveritySlope)
	}
	if report.TemperatureSlope == nil || *report.TemperatureSlope != 13.5 {
		t.Fatalf("expected temperature slope 13.50, got %v", report.TemperatureSlope)
	}
	if report.Explanation != "Thermal severity and temperature delta show a worsening pattern over time." {
		t.Fatalf("unexpected explanation %q", report.Explanation)
	}
}

func TestAnalyzeSlowWorsening(t *testing.T) {
	history := observations(
		[]float64{1.0, 1.05, 1.1},
		[]float64{30, 31, 32},
	)

	report := Analyze(history)

	if report.Trend != TrendSlowWorsening {
		t.Fatalf("expected slow_worsening, got %s", report.Trend)
	}
	if report.Urgency != UrgencyMedium {
		t.Fatalf("expected medium urgency, got %s", report.Urgency)
	}
	if report.Explanation != "Thermal severity and temperature delta show a slow worsening pattern over time." {
		t.Fatalf("unexpected explanation %q", report.Explanation)
	}
}

func TestAnalyzeStable(t *testing.T) {
	history := observations(
		[]float64{1.2, 1.1, 1.0},
		[]float64{45, 42, 40},
	)

	report := Analyze(history)

	if report.Trend != TrendStable {
		t.Fatalf("expected stable, got %s", report.Trend)
	}
	if report.Urgency != UrgencyLow {
		t.Fatalf("expected low urgency, got %s", report.Urgency)
	}
}

func TestAnalyzeWorseningNeedsBothSlopes(t *testing.T) {
	// Severity climbs fast but delta is flat: not fast worsening.
	history := observations(
		[]float64{0.5, 1.0, 1.5},
		[]float64{40, 40, 40},
	)

	report := Analyze(history)

	if report.Trend != TrendSlowWorsening {
		t.Fatalf("expected slow_worsening, got %s", report.Trend)
	}
}

func TestAnalyzeWithConfig(t *testing.T) {
	history := observations(
		[]float64{0.5, 0.8, 1.2, 1.6},
		[]float64{20, 30, 45, 60},
	)
	config := Config{WorseningSeveritySlope: 1.0, WorseningDeltaSlope: 100}

	report := AnalyzeWithConfig(history, config)

	if report.Trend != TrendSlowWorsening {
		t.Fatalf("stricter calibration should downgrade to slow_worsening, got %s", report.Trend)
	}
}

func TestAnalyzeTimedUniformMatchesIndexFit(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	history := observations(
		[]float64{0.5, 0.8, 1.2, 1.6},
		[]float64{20, 30, 45, 60},
	)
	for i := range history {
		history[i].ObservedAt = base.Add(time.Duration(i) * time.Hour)
	}

	timed := AnalyzeTimed(history)
	indexed := Analyze(history)

	if timed.Trend != indexed.Trend || timed.Urgency != indexed.Urgency {
		t.Fatalf("uniform spacing should match index fit: %+v vs %+v", timed, indexed)
	}
	if *timed.SeveritySlope != *indexed.SeveritySlope {
		t.Fatalf("slopes differ: %v vs %v", *timed.SeveritySlope, *indexed.SeveritySlope)
	}
}

func TestAnalyzeTimedNonUniformSpacing(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	history := observations(
		[]float64{0.5, 0.8, 1.2, 1.6},
		[]float64{20, 30, 45, 60},
	)
	offsets := []time.Duration{0, time.Hour, 2 * time.Hour, 10 * time.Hour}
	for i := range history {
		history[i].ObservedAt = base.Add(offsets[i])
	}

	report := AnalyzeTimed(history)

	if report.Trend != TrendWorsening {
		t.Fatalf("expected worsening, got %s", report.Trend)
	}
	if report.Urgency != UrgencyHigh {
		t.Fatalf("expected high urgency, got %s", report.Urgency)
	}
}

func TestAnalyzeTimedFallsBackWithoutTimestamps(t *testing.T) {
	history := observations(
		[]float64{0.5, 0.8, 1.2, 1.6},
		[]float64{20, 30, 45, 60},
	)
	history[2].ObservedAt = time.Now() // partial stamps must not be trusted

	report := AnalyzeTimed(history)

	if report.Trend != TrendWorsening || *report.SeveritySlope != 0.37 {
		t.Fatalf("expected index-fit fallback, got %+v", report)
	}
}

package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/abdulmannaan502/thermal-copilot/internal/trend"
)

// #region helpers
func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// #endregion helpers

func TestAppendAndSessionOrder(t *testing.T) {
	store := testStore(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	severities := []float64{0.5, 0.8, 1.2}
	for i, sev := range severities {
		err := store.Append("motor-7", trend.Observation{
			SeverityScore:    sev,
			TemperatureDelta: 20 + float64(i)*10,
			ObservedAt:       base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	history, err := store.Session("motor-7")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(history))
	}
	for i, obs := range history {
		if obs.SeverityScore != severities[i] {
			t.Errorf("position %d: expected severity %.1f, got %.1f", i, severities[i], obs.SeverityScore)
		}
	}
	if !history[0].ObservedAt.Equal(base) {
		t.Fatalf("expected first observation at %v, got %v", base, history[0].ObservedAt)
	}
}

func TestAppendFillsZeroTimestamp(t *testing.T) {
	store := testStore(t)
	before := time.Now().UTC()

	if err := store.Append("motor-7", trend.Observation{SeverityScore: 1}); err != nil {
		t.Fatalf("append: %v", err)
	}

	history, err := store.Session("motor-7")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(history))
	}
	if history[0].ObservedAt.Before(before) {
		t.Fatal("expected auto-filled observed_at to be >= test start time")
	}
}

func TestAppendRejectsEmptySession(t *testing.T) {
	store := testStore(t)

	if err := store.Append("", trend.Observation{SeverityScore: 1}); err == nil {
		t.Fatal("expected error for empty session id")
	}
}

func TestSessionUnknownIsEmpty(t *testing.T) {
	store := testStore(t)

	history, err := store.Session("never-seen")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d observations", len(history))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := testStore(t)

	if err := store.Append("motor-1", trend.Observation{SeverityScore: 0.5}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append("motor-2", trend.Observation{SeverityScore: 2.0}); err != nil {
		t.Fatalf("append: %v", err)
	}

	history, err := store.Session("motor-1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(history) != 1 || history[0].SeverityScore != 0.5 {
		t.Fatalf("session leakage: %+v", history)
	}

	ids, err := store.Sessions()
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(ids) != 2 || ids[0] != "motor-1" || ids[1] != "motor-2" {
		t.Fatalf("unexpected session list %v", ids)
	}
}

func TestHistoryFeedsTrendAnalysis(t *testing.T) {
	store := testStore(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	severities := []float64{0.5, 0.8, 1.2, 1.6}
	deltas := []float64{20, 30, 45, 60}
	for i := range severities {
		err := store.Append("motor-7", trend.Observation{
			SeverityScore:    severities[i],
			TemperatureDelta: deltas[i],
			ObservedAt:       base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	history, err := store.Session("motor-7")
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	report := trend.AnalyzeTimed(history)
	if report.Trend != trend.TrendWorsening || report.Urgency != trend.UrgencyHigh {
		t.Fatalf("expected worsening/high from stored history, got %+v", report)
	}
}

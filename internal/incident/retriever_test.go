package incident

import "testing"

func seededRetriever(t *testing.T) *Retriever {
	t.Helper()
	store := testStore(t)

	_, err := store.InsertBatch([]Incident{
		{
			ID:             "inc-bearing-1",
			EquipmentType:  "motor",
			ThermalPattern: "localized hotspot near bearing housing",
			FailureMode:    "bearing_overheating",
			RootCause:      "lubrication failure",
			ActionTaken:    "replaced bearing and relubricated",
			DowntimeHours:  6,
			RepairCostUsd:  1100,
		},
		{
			ID:             "inc-shaft-1",
			EquipmentType:  "motor",
			ThermalPattern: "elongated thermal streak along shaft",
			FailureMode:    "shaft_misalignment",
			RootCause:      "coupling wear",
			ActionTaken:    "realigned shaft",
			DowntimeHours:  3,
			RepairCostUsd:  500,
		},
		{
			ID:             "inc-bearing-2",
			EquipmentType:  "pump",
			ThermalPattern: "bearing hotspot with high temperature gradient",
			FailureMode:    "bearing_wear",
			RootCause:      "aging",
			ActionTaken:    "scheduled bearing replacement",
			DowntimeHours:  4,
			RepairCostUsd:  800,
		},
	})
	if err != nil {
		t.Fatalf("seed corpus: %v", err)
	}

	return NewRetriever(store, DefaultRetrieverConfig())
}

func TestRetrieveRanksByOverlap(t *testing.T) {
	r := seededRetriever(t)

	results, err := r.Retrieve("motor bearing overheating with localized hotspot", 3)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].ID != "inc-bearing-1" {
		t.Fatalf("expected inc-bearing-1 first, got %s", results[0].ID)
	}
}

func TestRetrieveHonorsLimit(t *testing.T) {
	r := seededRetriever(t)

	results, err := r.Retrieve("motor bearing shaft hotspot temperature", 2)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(results) > 2 {
		t.Fatalf("expected at most 2 results, got %d", len(results))
	}
}

func TestRetrieveMayReturnFewerThanRequested(t *testing.T) {
	r := seededRetriever(t)

	results, err := r.Retrieve("shaft misalignment", 10)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(results) == 0 || len(results) > 3 {
		t.Fatalf("expected 1-3 results, got %d", len(results))
	}
}

func TestRetrieveNoOverlap(t *testing.T) {
	r := seededRetriever(t)

	results, err := r.Retrieve("unrelated gearbox vibration query", 3)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	for _, inc := range results {
		if inc.FailureMode == "" {
			t.Fatalf("result with empty failure mode: %+v", inc)
		}
	}
}

func TestRetrieveEmptyQuery(t *testing.T) {
	r := seededRetriever(t)

	results, err := r.Retrieve("", 3)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results for empty query, got %d", len(results))
	}
}

func TestRetrieveDeterministicOrdering(t *testing.T) {
	r := seededRetriever(t)

	first, err := r.Retrieve("bearing hotspot temperature", 3)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	second, err := r.Retrieve("bearing hotspot temperature", 3)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("ordering unstable at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestTokenizeDropsStopwordsAndShortTokens(t *testing.T) {
	tokens := tokenize("The bearing IS overheating at the housing, near a shaft!")

	for _, tok := range tokens {
		if stopwords[tok] {
			t.Fatalf("stopword %q survived tokenization", tok)
		}
		if len(tok) < 2 {
			t.Fatalf("short token %q survived tokenization", tok)
		}
	}

	set := make(map[string]bool)
	for _, tok := range tokens {
		if set[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		set[tok] = true
	}
	if !set["bearing"] || !set["overheating"] || !set["shaft"] {
		t.Fatalf("expected domain tokens, got %v", tokens)
	}
}

package incident

import (
	"fmt"
	"sort"
)

// #region retriever
// Retriever ranks corpus incidents against a free-text query by keyword
// overlap. Results are relevance-ordered, capped at the requested limit,
// and may be fewer than requested, never more.
type Retriever struct {
	store  *Store
	config RetrieverConfig
}

// NewRetriever creates a Retriever over the given corpus store.
func NewRetriever(store *Store, config RetrieverConfig) *Retriever {
	return &Retriever{store: store, config: config}
}

// #endregion retriever

// #region retrieve
// Retrieve returns up to limit incidents relevant to the query. Records with
// no keyword overlap are excluded; score ties resolve by insertion order so
// repeated identical queries return identical rankings.
func (r *Retriever) Retrieve(query string, limit int) ([]Incident, error) {
	if limit <= 0 {
		limit = r.config.TopK
	}

	corpus, err := r.store.All()
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil, nil
	}

	type scored struct {
		inc   Incident
		score int
		order int
	}

	var candidates []scored
	seen := make(map[string]bool)
	for i, inc := range corpus {
		// consistency checks: skip empty or overlong pattern text and dupes
		if inc.ThermalPattern == "" {
			continue
		}
		if r.config.MaxPatternLen > 0 && len(inc.ThermalPattern) > r.config.MaxPatternLen {
			continue
		}
		if seen[inc.ID] {
			continue
		}
		seen[inc.ID] = true

		score := sharedKeywords(queryTokens, tokenize(document(inc)))
		if score == 0 {
			continue
		}
		candidates = append(candidates, scored{inc: inc, score: score, order: i})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		return candidates[a].order < candidates[b].order
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]Incident, len(candidates))
	for i, c := range candidates {
		results[i] = c.inc
	}
	return results, nil
}

// #endregion retrieve

// #region document
// document flattens an incident into the text matched against queries,
// mirroring how corpus records are written out for indexing.
func document(inc Incident) string {
	return fmt.Sprintf(
		"Equipment: %s. Thermal pattern: %s. Observed temperature: %s. "+
			"Failure mode: %s. Root cause: %s. Action taken: %s.",
		inc.EquipmentType, inc.ThermalPattern, inc.ObservedTemperature,
		inc.FailureMode, inc.RootCause, inc.ActionTaken,
	)
}

// #endregion document

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abdulmannaan502/thermal-copilot/internal/audit"
	"github.com/abdulmannaan502/thermal-copilot/internal/history"
	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
)

// #region wiring

// openStores opens one SQLite database shared by the incident corpus, the
// session history, and the audit log.
func openStores(dbPath string) (*incident.Store, *history.Store, error) {
	corpus, err := incident.NewStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open corpus: %w", err)
	}

	sessions, err := history.NewStoreWithDB(corpus.DB())
	if err != nil {
		corpus.Close()
		return nil, nil, fmt.Errorf("open history: %w", err)
	}

	if err := audit.Ensure(corpus.DB()); err != nil {
		corpus.Close()
		return nil, nil, err
	}

	return corpus, sessions, nil
}

// printJSON writes v to stdout with indentation, for piping into jq.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion wiring

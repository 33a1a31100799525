// Package incident manages the historical maintenance corpus and keyword
// retrieval over it.
package incident

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS incidents (
	incident_id          TEXT PRIMARY KEY,
	seq                  INTEGER NOT NULL,
	equipment_type       TEXT NOT NULL DEFAULT '',
	thermal_pattern      TEXT NOT NULL,
	observed_temperature TEXT NOT NULL DEFAULT '',
	failure_mode         TEXT NOT NULL,
	root_cause           TEXT NOT NULL DEFAULT '',
	action_taken         TEXT NOT NULL,
	downtime_hours       REAL NOT NULL,
	repair_cost_usd      REAL NOT NULL,
	created_at           TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_incidents_seq ON incidents(seq);
`
// #endregion schema

// #region store
// Store manages the incident corpus in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. audit).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region insert
// Insert stores one incident, assigning an ID when the record carries none.
// Insertion order is preserved through the seq column so that relevance
// ties resolve deterministically.
func (s *Store) Insert(inc Incident) (string, error) {
	if inc.ID == "" {
		inc.ID = uuid.New().String()
	}

	var maxSeq sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(seq) FROM incidents`).Scan(&maxSeq); err != nil {
		return "", fmt.Errorf("next seq: %w", err)
	}

	_, err := s.db.Exec(
		`INSERT INTO incidents (incident_id, seq, equipment_type, thermal_pattern, observed_temperature,
		  failure_mode, root_cause, action_taken, downtime_hours, repair_cost_usd, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inc.ID, maxSeq.Int64+1, inc.EquipmentType, inc.ThermalPattern, inc.ObservedTemperature,
		inc.FailureMode, inc.RootCause, inc.ActionTaken, inc.DowntimeHours, inc.RepairCostUsd,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert incident: %w", err)
	}
	return inc.ID, nil
}

// InsertBatch stores incidents in order, stopping at the first failure.
func (s *Store) InsertBatch(incidents []Incident) (int, error) {
	for i, inc := range incidents {
		if _, err := s.Insert(inc); err != nil {
			return i, err
		}
	}
	return len(incidents), nil
}

// #endregion insert

// #region query
// All returns every incident in insertion order.
func (s *Store) All() ([]Incident, error) {
	rows, err := s.db.Query(
		`SELECT incident_id, equipment_type, thermal_pattern, observed_temperature,
		  failure_mode, root_cause, action_taken, downtime_hours, repair_cost_usd
		 FROM incidents ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()

	var incidents []Incident
	for rows.Next() {
		var inc Incident
		if err := rows.Scan(
			&inc.ID, &inc.EquipmentType, &inc.ThermalPattern, &inc.ObservedTemperature,
			&inc.FailureMode, &inc.RootCause, &inc.ActionTaken, &inc.DowntimeHours, &inc.RepairCostUsd,
		); err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		incidents = append(incidents, inc)
	}
	return incidents, rows.Err()
}

// Count returns the corpus size.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM incidents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count incidents: %w", err)
	}
	return n, nil
}

// #endregion query

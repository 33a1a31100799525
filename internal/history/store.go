// Package history persists per-session observation sequences so trend
// analysis can run over all assessments of one piece of equipment.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/abdulmannaan502/thermal-copilot/internal/trend"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS observations (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id        TEXT NOT NULL,
	severity_score    REAL NOT NULL,
	temperature_delta REAL NOT NULL,
	observed_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_observations_session ON observations(session_id, id);
`
// #endregion schema

// #region store
// Store is an append-only observation log keyed by session.
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

// NewStoreWithDB attaches to an already-open database, running migrations.
// The caller keeps ownership of the connection.
func NewStoreWithDB(db *sql.DB) (*Store, error) {
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

// #region append
// Append records one observation at the end of a session's history.
// A zero ObservedAt is filled with the current time.
func (s *Store) Append(sessionID string, obs trend.Observation) error {
	if sessionID == "" {
		return fmt.Errorf("append observation: empty session id")
	}
	if obs.ObservedAt.IsZero() {
		obs.ObservedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO observations (session_id, severity_score, temperature_delta, observed_at)
		 VALUES (?, ?, ?, ?)`,
		sessionID, obs.SeverityScore, obs.TemperatureDelta,
		obs.ObservedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append observation: %w", err)
	}
	return nil
}

// #endregion append

// #region query
// Session returns a session's observations in append order. Unknown
// sessions yield an empty history, not an error.
func (s *Store) Session(sessionID string) ([]trend.Observation, error) {
	rows, err := s.db.Query(
		`SELECT severity_score, temperature_delta, observed_at
		 FROM observations WHERE session_id = ? ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	var history []trend.Observation
	for rows.Next() {
		var obs trend.Observation
		var observedAt string
		if err := rows.Scan(&obs.SeverityScore, &obs.TemperatureDelta, &observedAt); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		if obs.ObservedAt, err = time.Parse(time.RFC3339Nano, observedAt); err != nil {
			return nil, fmt.Errorf("parse observed_at: %w", err)
		}
		history = append(history, obs)
	}
	return history, rows.Err()
}

// Sessions lists the distinct session IDs present in the log.
func (s *Store) Sessions() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT session_id FROM observations ORDER BY session_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// #endregion query

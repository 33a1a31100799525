// Package audit writes an append-only record of every assessment verdict,
// so escalations can be reviewed after the fact.
package audit

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	assessment_id TEXT NOT NULL,
	session_id    TEXT NOT NULL,
	verdict       TEXT NOT NULL,
	risk_level    TEXT NOT NULL,
	escalated     INTEGER NOT NULL,
	reason        TEXT,
	created_at    TEXT NOT NULL
);
`
// #endregion schema

// #region entry
// Entry is a single row in the audit_log table.
type Entry struct {
	AssessmentID string
	SessionID    string
	Verdict      string // "accept" | "monitor" | "escalate"
	RiskLevel    string
	Escalated    bool
	Reason       string
	CreatedAt    time.Time
}

// #endregion entry

// #region log
// Ensure creates the audit_log table if it does not exist.
func Ensure(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate audit log: %w", err)
	}
	return nil
}

// Log writes one audit entry. A zero CreatedAt is filled with the
// current time.
func Log(db *sql.DB, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO audit_log (assessment_id, session_id, verdict, risk_level, escalated, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.AssessmentID,
		entry.SessionID,
		entry.Verdict,
		entry.RiskLevel,
		boolToInt(entry.Escalated),
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log assessment: %w", err)
	}
	return nil
}

// Recent returns the newest entries first, capped at limit.
func Recent(db *sql.DB, limit int) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT assessment_id, session_id, verdict, risk_level, escalated, reason, created_at
		 FROM audit_log ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var escalated int
		var reason sql.NullString
		var createdAt string
		if err := rows.Scan(&e.AssessmentID, &e.SessionID, &e.Verdict, &e.RiskLevel, &escalated, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.Escalated = escalated != 0
		e.Reason = reason.String
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion log

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers

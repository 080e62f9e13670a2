// Package journal keeps an advisory audit log of lifecycle events in a
// local SQLite database. It records what happened, never configuration;
// write failures are reported by callers as warnings, not treated as fatal.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded lifecycle event.
type Entry struct {
	ID        int64
	SessionID string
	Container string
	Action    string
	Detail    string
	CreatedAt time.Time
}

// Journal wraps the history database.
type Journal struct {
	db *sql.DB
}

// DefaultPath returns the conventional history database location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "labpod", "history.db"), nil
}

// Open opens or creates the journal at path and ensures the schema exists.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		container  TEXT NOT NULL,
		action     TEXT NOT NULL,
		detail     TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Record appends one event.
func (j *Journal) Record(sessionID, containerName, action, detail string) error {
	_, err := j.db.Exec(
		`INSERT INTO events (session_id, container, action, detail) VALUES (?, ?, ?, ?)`,
		sessionID, containerName, action, detail,
	)
	if err != nil {
		return fmt.Errorf("failed to record journal event: %w", err)
	}
	return nil
}

// Recent returns the latest n events, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, session_id, container, action, detail, created_at
		 FROM events ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Container, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

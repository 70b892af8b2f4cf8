// Package eventlog keeps a small SQLite journal of classified tool events
// so `persona history` can show what a session has been doing. The journal
// is strictly best-effort: hook processing continues unchanged when it is
// unavailable.
package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

const schemaDDL = `
CREATE TABLE IF NOT EXISTS events (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	tool       TEXT NOT NULL,
	activity   TEXT NOT NULL,
	job        TEXT NOT NULL DEFAULT '',
	is_error   INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, created_at);
`

// Entry is one journaled tool event.
type Entry struct {
	ID        int64
	SessionID string
	Tool      string
	Activity  string
	Job       string
	IsError   bool
	CreatedAt time.Time
}

// QueryOpts filters history queries.
type QueryOpts struct {
	// SessionID limits results to one session; empty means all sessions.
	SessionID string

	// Limit caps the number of rows returned, newest first. 0 means the
	// default of 50.
	Limit int
}

// Journal is an open event journal.
type Journal struct {
	db *sql.DB
}

// DefaultPath returns the journal location in the user cache directory,
// or "" when none is available.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "persona", "events.db")
}

// Open opens (creating if needed) the journal at path. WAL mode keeps
// concurrent hook writers from blocking each other.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, fmt.Errorf("no journal path available")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_journal_mode=WAL", path))
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging journal: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database connection. Safe to call multiple times.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record appends one event to the journal.
func (j *Journal) Record(ctx context.Context, e Entry) error {
	isError := 0
	if e.IsError {
		isError = 1
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO events (session_id, tool, activity, job, is_error, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.Tool, e.Activity, e.Job, isError, e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("recording event: %w", err)
	}
	return nil
}

// Query returns journaled events, newest first.
func (j *Journal) Query(ctx context.Context, opts QueryOpts) ([]Entry, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, session_id, tool, activity, job, is_error, created_at FROM events`
	args := []any{}
	if opts.SessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, opts.SessionID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var isError int
		var createdAt string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Tool, &e.Activity, &e.Job, &isError, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		e.IsError = isError != 0
		if createdAt != "" {
			t, err := time.Parse(timeLayout, createdAt)
			if err != nil {
				return nil, fmt.Errorf("parsing event timestamp: %w", err)
			}
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return entries, nil
}

// DeleteSession drops all journaled events for a session. Called from the
// session-end hook alongside state deletion.
func (j *Journal) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := j.db.ExecContext(ctx, `DELETE FROM events WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting session events: %w", err)
	}
	return nil
}

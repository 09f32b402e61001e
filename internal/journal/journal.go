// Package journal persists every fired action (prepare, adhan, warning,
// lock) to a small sqlite database, giving the once-per-day guarantees an
// audit trail that survives restarts of either process.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
    id     INTEGER PRIMARY KEY AUTOINCREMENT,
    at     INTEGER NOT NULL,
    kind   TEXT    NOT NULL,
    prayer TEXT    NOT NULL,
    detail TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS events_at ON events(at);
`

// Event is one fired action.
type Event struct {
	At     time.Time
	Kind   string
	Prayer string
	Detail string
}

// Journal is an append-only sqlite event log.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if necessary) the journal database at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: cannot create schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Record appends one event stamped with the current time.
func (j *Journal) Record(kind, prayer, detail string) error {
	_, err := j.db.Exec(
		`INSERT INTO events (at, kind, prayer, detail) VALUES (?, ?, ?, ?)`,
		time.Now().Unix(), kind, prayer, detail,
	)
	return err
}

// Recent returns up to limit events, newest first.
func (j *Journal) Recent(limit int) ([]Event, error) {
	rows, err := j.db.Query(
		`SELECT at, kind, prayer, detail FROM events ORDER BY at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var at int64
		if err := rows.Scan(&at, &e.Kind, &e.Prayer, &e.Detail); err != nil {
			return nil, err
		}
		e.At = time.Unix(at, 0)
		events = append(events, e)
	}
	return events, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

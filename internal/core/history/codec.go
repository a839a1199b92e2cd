package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrFormat marks a history file that exists but is not a readable klip
// history database. Callers recover by backing the file up and starting
// with an empty history.
var ErrFormat = errors.New("history: unrecognized file format")

// schemaVersion is written to PRAGMA user_version on create and checked on
// open. A mismatch means the file was written by something else.
const schemaVersion = 1

// Codec persists store snapshots to a SQLite file. Content is stored as a
// BLOB so newlines, tabs, NULs and invalid UTF-8 round-trip byte-for-byte.
type Codec struct {
	db *sql.DB
}

// OpenCodec opens or creates the history database at path.
func OpenCodec(path string) (*Codec, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if err := prepareSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Codec{db: db}, nil
}

func prepareSchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		// A file that isn't SQLite fails here with a "not a database" error.
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}

	switch version {
	case 0:
		// Fresh file (or pre-klip database; CREATE IF NOT EXISTS keeps
		// an existing table of the same shape usable).
	case schemaVersion:
		return nil
	default:
		return fmt.Errorf("%w: unsupported schema version %d", ErrFormat, version)
	}

	_, err := db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS entries (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL,
			content     BLOB NOT NULL,
			captured_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_position ON entries(position);
		PRAGMA user_version = %d;
	`, schemaVersion))
	if err != nil {
		return fmt.Errorf("%w: creating entries table: %v", ErrFormat, err)
	}
	return nil
}

// Save replaces the persisted snapshot with the given entries, head-first.
// The whole write is one transaction, so readers never observe a partial
// snapshot and a failed save leaves the previous one intact.
func (c *Codec) Save(entries []Entry) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO entries (id, position, content, captured_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		_, err := stmt.Exec(e.ID, i, []byte(e.Content), e.CapturedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("inserting entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}

// Load returns the persisted entries, head-first.
func (c *Codec) Load() ([]Entry, error) {
	rows, err := c.db.Query("SELECT id, content, captured_at FROM entries ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var content []byte
		var ts string
		if err := rows.Scan(&e.ID, &content, &ts); err != nil {
			return nil, fmt.Errorf("%w: scanning entry row: %v", ErrFormat, err)
		}
		e.Content = string(content)
		e.CapturedAt, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing capture time %q: %v", ErrFormat, ts, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	return entries, nil
}

// Close closes the database connection.
func (c *Codec) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

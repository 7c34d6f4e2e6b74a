package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the snapshot as a single row in an embedded
// database file. A WAL-mode SQLite file survives power loss better
// than a bare JSON file on the flaky generators at a festival site.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed initializes) the database file.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS snapshots (
			id         INTEGER PRIMARY KEY CHECK (id = 1),
			document   BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, data []byte) error {
	const q = `
		INSERT INTO snapshots (id, document, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at;`
	if _, err := s.db.ExecContext(ctx, q, data, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("store: sqlite save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT document FROM snapshots WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("store: sqlite load: %w", err)
	}
	return data, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

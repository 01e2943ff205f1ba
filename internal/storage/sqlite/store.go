// Package sqlite stores converted documents in a single SQLite file, for runs
// that want a queryable result without a database server.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cory-johannsen/mudconvert/internal/importer"
)

var _ importer.Sink = (*Store)(nil)

// ErrNotFound is returned when a document lookup yields no results.
var ErrNotFound = errors.New("document not found")

const schema = `
CREATE TABLE IF NOT EXISTS converted_documents (
	kind       TEXT NOT NULL,
	key        TEXT NOT NULL,
	run_id     TEXT NOT NULL,
	format     TEXT NOT NULL,
	body       TEXT NOT NULL,
	data       BLOB NOT NULL,
	digest     TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (kind, key)
);
CREATE INDEX IF NOT EXISTS idx_converted_documents_run_id ON converted_documents (run_id);
`

// Document is one stored row. Body is the canonical JSON; Data is the
// document in the configured output format.
type Document struct {
	Kind      string
	Key       string
	RunID     uuid.UUID
	Format    string
	Body      string
	Data      []byte
	Digest    string
	UpdatedAt time.Time
}

// Store is a SQLite-backed importer.Sink.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path and ensures the schema.
//
// Postcondition: Returns a usable Store or a non-nil error.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	// Concurrent workers share one connection; SQLite serializes writers anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range []string{"PRAGMA journal_mode=WAL;", "PRAGMA busy_timeout=5000;", schema} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("initializing sqlite %s: %w", path, err)
		}
	}
	return &Store{db: db, now: time.Now}, nil
}

// Write upserts e, keyed by kind and key.
func (s *Store) Write(ctx context.Context, e importer.Encoded) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO converted_documents (kind, key, run_id, format, body, data, digest, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (kind, key) DO UPDATE
		 SET run_id = excluded.run_id, format = excluded.format, body = excluded.body,
		     data = excluded.data, digest = excluded.digest, updated_at = excluded.updated_at`,
		e.Kind, e.Key, e.RunID.String(), string(e.Format), string(e.JSON), e.Data, e.Digest,
		s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upserting %s %s: %w", e.Kind, e.Key, err)
	}
	return nil
}

// Get retrieves one document.
//
// Postcondition: Returns ErrNotFound if no row matches.
func (s *Store) Get(ctx context.Context, kind, key string) (Document, error) {
	var (
		doc            Document
		runID, updated string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT kind, key, run_id, format, body, data, digest, updated_at
		 FROM converted_documents WHERE kind = ? AND key = ?`,
		kind, key,
	).Scan(&doc.Kind, &doc.Key, &runID, &doc.Format, &doc.Body, &doc.Data, &doc.Digest, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("querying %s %s: %w", kind, key, err)
	}
	if doc.RunID, err = uuid.Parse(runID); err != nil {
		return Document{}, fmt.Errorf("parsing run id of %s %s: %w", kind, key, err)
	}
	if doc.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return Document{}, fmt.Errorf("parsing updated_at of %s %s: %w", kind, key, err)
	}
	return doc, nil
}

// Keys lists the keys stored for kind in ascending order.
func (s *Store) Keys(ctx context.Context, kind string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM converted_documents WHERE kind = ? ORDER BY key`, kind)
	if err != nil {
		return nil, fmt.Errorf("listing %s keys: %w", kind, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning %s keys: %w", kind, err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

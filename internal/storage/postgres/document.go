package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/mudconvert/internal/importer"
)

var _ importer.Sink = (*DocumentRepository)(nil)

// ErrDocumentNotFound is returned when a document lookup yields no results.
var ErrDocumentNotFound = errors.New("document not found")

// StoredDocument is one converted document as persisted.
type StoredDocument struct {
	Kind      string
	Key       string
	RunID     uuid.UUID
	Format    string
	Body      []byte
	Digest    string
	UpdatedAt time.Time
}

// DocumentRepository persists converted documents in the converted_documents
// table. It implements importer.Sink.
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a DocumentRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool with migrations applied.
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Write upserts e, keyed by kind and key. The body is stored as JSONB from
// the canonical JSON rendering whatever the configured output format.
//
// Postcondition: exactly one row exists for (e.Kind, e.Key) carrying e's run id.
func (r *DocumentRepository) Write(ctx context.Context, e importer.Encoded) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO converted_documents (kind, key, run_id, format, body, digest, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())
		 ON CONFLICT (kind, key) DO UPDATE
		 SET run_id = EXCLUDED.run_id, format = EXCLUDED.format, body = EXCLUDED.body,
		     digest = EXCLUDED.digest, updated_at = EXCLUDED.updated_at`,
		e.Kind, e.Key, e.RunID.String(), string(e.Format), e.JSON, e.Digest,
	)
	if err != nil {
		return fmt.Errorf("upserting %s %s: %w", e.Kind, e.Key, err)
	}
	return nil
}

// Get retrieves one document.
//
// Postcondition: Returns ErrDocumentNotFound if no row matches.
func (r *DocumentRepository) Get(ctx context.Context, kind, key string) (StoredDocument, error) {
	var (
		doc   StoredDocument
		runID string
	)
	err := r.db.QueryRow(ctx,
		`SELECT kind, key, run_id::text, format, body, digest, updated_at
		 FROM converted_documents WHERE kind = $1 AND key = $2`,
		kind, key,
	).Scan(&doc.Kind, &doc.Key, &runID, &doc.Format, &doc.Body, &doc.Digest, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return StoredDocument{}, ErrDocumentNotFound
		}
		return StoredDocument{}, fmt.Errorf("querying %s %s: %w", kind, key, err)
	}
	if doc.RunID, err = uuid.Parse(runID); err != nil {
		return StoredDocument{}, fmt.Errorf("parsing run id of %s %s: %w", kind, key, err)
	}
	return doc, nil
}

// Keys lists the keys stored for kind in ascending order.
func (r *DocumentRepository) Keys(ctx context.Context, kind string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT key FROM converted_documents WHERE kind = $1 ORDER BY key`, kind)
	if err != nil {
		return nil, fmt.Errorf("listing %s keys: %w", kind, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning %s keys: %w", kind, err)
	}
	return keys, nil
}

// CountByRun returns how many stored documents were last written by runID.
func (r *DocumentRepository) CountByRun(ctx context.Context, runID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM converted_documents WHERE run_id = $1`, runID.String(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting documents of run %s: %w", runID, err)
	}
	return n, nil
}

// Close is a no-op; the pool belongs to the caller.
func (r *DocumentRepository) Close() error { return nil }

// Package manifest persists the incremental-run manifest in a BoltDB file:
// one bucket per document kind, keyed by unit key, holding JSON entries.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/cory-johannsen/mudconvert/internal/importer"
)

var _ importer.Manifest = (*Store)(nil)

// Store is a BoltDB-backed importer.Manifest. bbolt serializes writers, so a
// Store is safe for the importer's concurrent workers.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the manifest at path.
//
// Postcondition: Returns a usable Store or a non-nil error. Opening a file
// held by another process fails after one second.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("manifest path is required")
	}
	clean := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(clean), err)
	}
	db, err := bbolt.Open(clean, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening manifest %s: %w", clean, err)
	}
	return &Store{db: db}, nil
}

// Lookup returns the entry recorded for kind and key.
func (s *Store) Lookup(ctx context.Context, kind, key string) (importer.ManifestEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		return importer.ManifestEntry{}, false, err
	}
	var (
		entry importer.ManifestEntry
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(kind))
		if b == nil {
			return nil
		}
		payload := b.Get([]byte(key))
		if payload == nil {
			return nil
		}
		found = true
		return json.Unmarshal(payload, &entry)
	})
	if err != nil {
		return importer.ManifestEntry{}, false, fmt.Errorf("reading manifest entry %s/%s: %w", kind, key, err)
	}
	return entry, found, nil
}

// Record stores e for kind and key, replacing any earlier entry.
func (s *Store) Record(ctx context.Context, kind, key string, e importer.ManifestEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal manifest entry: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(kind))
		if err != nil {
			return fmt.Errorf("creating bucket %s: %w", kind, err)
		}
		return b.Put([]byte(key), payload)
	})
}

// Forget removes every entry of kind, forcing the next run to convert all of
// its units.
func (s *Store) Forget(kind string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(kind)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(kind))
	})
}

// Len returns the number of entries recorded for kind.
func (s *Store) Len(kind string) (int, error) {
	n := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket([]byte(kind)); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n, err
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

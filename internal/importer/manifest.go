package importer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// ManifestEntry records the last successful conversion of a Unit.
type ManifestEntry struct {
	InputDigest  string    `json:"input_digest"`
	OutputDigest string    `json:"output_digest"`
	RunID        uuid.UUID `json:"run_id"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Manifest remembers converted units so unchanged input can be skipped.
//
// Lookup returns ok=false when the unit has never been recorded.
type Manifest interface {
	Lookup(ctx context.Context, kind, key string) (ManifestEntry, bool, error)
	Record(ctx context.Context, kind, key string, e ManifestEntry) error
}

// InputDigest hashes the unit's files, in order, together with settings:
// anything besides the input bytes that changes the output, such as the value
// layout or output format.
func InputDigest(u Unit, settings string) (string, error) {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00", u.Kind, u.Key, settings)
	for _, path := range u.Files {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("hashing %s: %w", path, err)
		}
		fmt.Fprintf(h, "%s\x00", path)
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("hashing %s: %w", path, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

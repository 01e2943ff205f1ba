package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Sink receives encoded documents. Write is called concurrently for distinct
// documents; implementations must be safe for that.
type Sink interface {
	Write(ctx context.Context, e Encoded) error
	Close() error
}

// FileSink writes each document to <dir>/<kind>s/<key>.<ext>, optionally
// zstd-compressed with a ".zst" suffix.
type FileSink struct {
	dir string
	enc *zstd.Encoder
}

// NewFileSink constructs a FileSink rooted at dir.
//
// Precondition: dir must exist or be creatable.
// Postcondition: returns a usable sink or a non-nil error.
func NewFileSink(dir string, compress bool) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	s := &FileSink{dir: dir}
	if compress {
		// A nil writer limits the encoder to EncodeAll, which is safe for
		// concurrent use and deterministic for identical input.
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("creating zstd encoder: %w", err)
		}
		s.enc = enc
	}
	return s, nil
}

// Path returns the file a document of kind and key is written to.
func (s *FileSink) Path(kind, key string, f Format) string {
	name := key + "." + f.Ext()
	if s.enc != nil {
		name += ".zst"
	}
	return filepath.Join(s.dir, kind+"s", name)
}

// Write writes e to its path, replacing any earlier file atomically.
func (s *FileSink) Write(ctx context.Context, e Encoded) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := s.Path(e.Kind, e.Key, e.Format)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	data := e.Data
	if s.enc != nil {
		data = s.enc.EncodeAll(e.Data, nil)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s %s to %s: %w", e.Kind, e.Key, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return nil
}

// Close releases the compressor, if any.
func (s *FileSink) Close() error {
	if s.enc != nil {
		return s.enc.Close()
	}
	return nil
}

package importer

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
)

// Encoding names the byte encoding of legacy input files.
type Encoding string

// Supported input encodings.
const (
	EncodingASCII  Encoding = "ascii"
	EncodingLatin1 Encoding = "latin1"
)

// ParseEncoding validates an encoding name from configuration.
func ParseEncoding(name string) (Encoding, error) {
	switch Encoding(name) {
	case EncodingASCII, EncodingLatin1:
		return Encoding(name), nil
	case "":
		return EncodingASCII, nil
	default:
		return "", fmt.Errorf("unknown input encoding %q", name)
	}
}

// Reader wraps r so that it yields UTF-8 text.
// ASCII input passes through; Latin-1 bytes above 0x7f are transcoded.
func (e Encoding) Reader(r io.Reader) io.Reader {
	if e == EncodingLatin1 {
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	return r
}

// OpenCursor reads path in encoding e into a line cursor named after the file.
//
// Postcondition: the file is closed before returning.
func OpenCursor(path string, e Encoding) (*cursor.Cursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	c, err := cursor.New(path, e.Reader(f))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return c, nil
}

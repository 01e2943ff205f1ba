package importer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of written documents.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name from configuration.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatYAML:
		return Format(name), nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string { return string(f) }

// Encoded is a serialized Document ready for a Sink.
type Encoded struct {
	Kind   string
	Key    string
	RunID  uuid.UUID
	Format Format
	// Data is the document in Format.
	Data []byte
	// JSON is the canonical JSON rendering, used for validation and by
	// database sinks regardless of Format.
	JSON []byte
	// Digest is the hex SHA-256 of Data.
	Digest string
}

// Encode serializes doc.Body. Output is deterministic: struct fields keep
// declaration order and map keys are sorted by both encoders.
//
// Postcondition: JSON always ends in a newline; Data equals JSON for FormatJSON.
func Encode(doc Document, f Format, runID uuid.UUID) (Encoded, error) {
	js, err := json.MarshalIndent(doc.Body, "", "  ")
	if err != nil {
		return Encoded{}, fmt.Errorf("encoding %s %s as json: %w", doc.Kind, doc.Key, err)
	}
	js = append(js, '\n')

	data := js
	if f == FormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc.Body); err != nil {
			return Encoded{}, fmt.Errorf("encoding %s %s as yaml: %w", doc.Kind, doc.Key, err)
		}
		if err := enc.Close(); err != nil {
			return Encoded{}, fmt.Errorf("encoding %s %s as yaml: %w", doc.Kind, doc.Key, err)
		}
		data = buf.Bytes()
	}

	sum := sha256.Sum256(data)
	return Encoded{
		Kind:   doc.Kind,
		Key:    doc.Key,
		RunID:  runID,
		Format: f,
		Data:   data,
		JSON:   js,
		Digest: hex.EncodeToString(sum[:]),
	}, nil
}

package importer

import (
	"context"

	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
)

// Document kinds.
const (
	KindZone   = "zone"
	KindPlayer = "player"
)

// Unit is one independently convertible set of input files: the files of one
// zone, or the save files of one player.
type Unit struct {
	Kind  string
	Key   string
	Files []string
}

// Document is the normalized result of converting one Unit.
//
// Body is marshalled as-is, so its JSON and YAML tags define the output schema.
// Report carries every fatal error and warning found while decoding the Unit;
// a Document whose Report has fatals still carries the records that decoded.
type Document struct {
	Kind   string
	Key    string
	Body   any
	Report *diag.Report
}

// Source discovers convertible units under a root directory and converts them.
//
// Convert is called concurrently for distinct units and must not share mutable
// state between calls. It returns an error only when the unit as a whole
// cannot be converted; record-level failures belong in the Document's Report.
type Source interface {
	Discover(root string) ([]Unit, error)
	Convert(ctx context.Context, u Unit) (Document, error)
}

// Filter decides whether a decoded record is kept in the output.
type Filter interface {
	Keep(kind string, id int, name string) (bool, error)
}

// KeepAll is the Filter used when no filter is configured.
type KeepAll struct{}

// Keep always returns true.
func (KeepAll) Keep(string, int, string) (bool, error) { return true, nil }

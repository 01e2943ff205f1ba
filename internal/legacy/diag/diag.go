// Package diag defines the error taxonomy shared by the legacy decoders and
// the per-file reports the importer aggregates.
package diag

import (
	"errors"
	"fmt"
)

// NoRecord marks a Position that is not inside an identified record.
const NoRecord = -1

// Position locates a problem in the input.
type Position struct {
	File   string
	Line   int
	Record int
}

// At returns a Position outside any record.
func At(file string, line int) Position {
	return Position{File: file, Line: line, Record: NoRecord}
}

// String renders "file:line" with an optional " (record #id)" suffix.
func (p Position) String() string {
	if p.Record == NoRecord {
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	}
	return fmt.Sprintf("%s:%d (record #%d)", p.File, p.Line, p.Record)
}

// StructuralError reports input whose shape does not match what the decoder
// expected: a missing line, a wrong token count, or a non-numeric number.
// It is fatal for the record being decoded.
type StructuralError struct {
	Pos Position
	Msg string
	Err error
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Pos, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// UnknownTagError reports a tag, key or command letter the decoder has no rule for.
// It is fatal for the record being decoded.
type UnknownTagError struct {
	Pos     Position
	Context string
	Tag     string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("%s: unknown %s tag %q", e.Pos, e.Context, e.Tag)
}

// Kind classifies a non-fatal Warning.
type Kind int

const (
	// Integrity marks input that decoded but disagrees with itself, such as a
	// zone continuation naming the wrong parent.
	Integrity Kind = iota
	// Fallback marks a value passed through raw because its type was not recognized.
	Fallback
	// Deprecated marks input that was read and intentionally discarded.
	Deprecated
)

func (k Kind) String() string {
	switch k {
	case Integrity:
		return "integrity"
	case Fallback:
		return "fallback"
	case Deprecated:
		return "deprecated"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Warning is a non-fatal finding. The record it concerns is still emitted.
type Warning struct {
	Kind Kind
	Pos  Position
	Msg  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Pos, w.Kind, w.Msg)
}

// IsFatal reports whether err belongs to the record-fatal part of the taxonomy.
func IsFatal(err error) bool {
	var se *StructuralError
	var ue *UnknownTagError
	return errors.As(err, &se) || errors.As(err, &ue)
}

// PositionOf extracts the Position carried by a taxonomy error.
//
// Postcondition: ok is false for errors outside the taxonomy.
func PositionOf(err error) (Position, bool) {
	var se *StructuralError
	if errors.As(err, &se) {
		return se.Pos, true
	}
	var ue *UnknownTagError
	if errors.As(err, &ue) {
		return ue.Pos, true
	}
	return Position{}, false
}

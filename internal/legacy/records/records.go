// Package records decodes the delimiter-bounded records of legacy world files:
// mobiles, objects, rooms, shops and triggers.
//
// Every decoder follows the same shape: an id line, a fixed run of tilde
// strings, fixed-arity numeric lines, then a tagged tail read until the record
// ends. A failure is fatal for its record only.
package records

import (
	"strconv"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
)

// ExtraDescription is a keyword-triggered description attached to a room or object.
type ExtraDescription struct {
	Keywords    []string
	Description string
}

// Decoder decodes one record from its sub-cursor.
type Decoder[T any] func(c *cursor.Cursor, rep *diag.Report) (T, error)

// DecodeAll splits c on "#" and decodes each record with decode. Failed
// records are reported on rep and skipped; the rest are returned in file order.
func DecodeAll[T any](c *cursor.Cursor, rep *diag.Report, decode Decoder[T]) []T {
	var out []T
	for _, rc := range c.SplitByDelimiter("#") {
		v, err := decode(rc, rep)
		if err != nil {
			rep.Fatal(err)
			continue
		}
		rep.Records++
		out = append(out, v)
	}
	return out
}

// Keywords splits a namelist string into its words.
func Keywords(s string) []string {
	f := strings.Fields(s)
	if f == nil {
		return []string{}
	}
	return f
}

func readExtraDescription(c *cursor.Cursor) (ExtraDescription, error) {
	kw, err := c.ReadString()
	if err != nil {
		return ExtraDescription{}, err
	}
	desc, err := c.ReadString()
	if err != nil {
		return ExtraDescription{}, err
	}
	return ExtraDescription{Keywords: Keywords(kw), Description: desc}, nil
}

// readTriggerRef parses a "T <id>" line.
func readTriggerRef(c *cursor.Cursor, line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, c.Errorf("trigger line %q has no id", line)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, c.Wrap(err, "trigger id in %q", line)
	}
	return id, nil
}

// clamp limits v to [lo, hi] and reports whether it had to.
func clamp(v, lo, hi int) (int, bool) {
	switch {
	case v < lo:
		return lo, true
	case v > hi:
		return hi, true
	default:
		return v, false
	}
}

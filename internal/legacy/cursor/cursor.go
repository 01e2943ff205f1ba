// Package cursor provides the line cursor every legacy decoder reads through.
package cursor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
)

const maxLineLength = 1 << 20

type line struct {
	no   int
	text string
}

// Cursor is a mutable position over the lines of one file or one record.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	file   string
	lines  []line
	pos    int
	last   int
	record int
}

// New reads all of r into a Cursor. Trailing carriage returns are removed.
//
// Postcondition: returned cursor is positioned before the first line.
func New(file string, r io.Reader) (*Cursor, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	c := &Cursor{file: file, record: diag.NoRecord}
	n := 0
	for sc.Scan() {
		n++
		c.lines = append(c.lines, line{no: n, text: strings.TrimRight(sc.Text(), "\r")})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return c, nil
}

// FromString builds a Cursor over s.
func FromString(file, s string) *Cursor {
	c, err := New(file, strings.NewReader(s))
	if err != nil {
		// strings.Reader never fails; only an over-long line can get here.
		return &Cursor{file: file, record: diag.NoRecord}
	}
	return c
}

// File returns the name of the file the cursor reads.
func (c *Cursor) File() string { return c.file }

// SetRecord attaches a record id to positions reported from now on.
func (c *Cursor) SetRecord(id int) { c.record = id }

// Record returns the record id set by SetRecord, or diag.NoRecord.
func (c *Cursor) Record() int { return c.record }

// LineNo returns the number of the most recently consumed line.
func (c *Cursor) LineNo() int {
	if c.last > 0 {
		return c.last
	}
	if len(c.lines) > 0 {
		return c.lines[0].no
	}
	return 0
}

// Pos returns the current position for diagnostics.
func (c *Cursor) Pos() diag.Position {
	return diag.Position{File: c.file, Line: c.LineNo(), Record: c.record}
}

// Done reports whether only blank lines remain.
func (c *Cursor) Done() bool {
	_, ok := c.Peek()
	return !ok
}

func (c *Cursor) rawLine() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	l := c.lines[c.pos]
	c.pos++
	c.last = l.no
	return l.text, true
}

// NextLine returns the next non-blank line with surrounding whitespace removed.
//
// Postcondition: ok is false once the cursor is exhausted.
func (c *Cursor) NextLine() (string, bool) {
	for {
		text, ok := c.rawLine()
		if !ok {
			return "", false
		}
		if t := strings.TrimSpace(text); t != "" {
			return t, true
		}
	}
}

// Peek returns the next non-blank line without consuming it.
func (c *Cursor) Peek() (string, bool) {
	for i := c.pos; i < len(c.lines); i++ {
		if t := strings.TrimSpace(c.lines[i].text); t != "" {
			return t, true
		}
	}
	return "", false
}

// RequireLine is NextLine for positions where the record cannot end.
// what names the expected field in the error.
func (c *Cursor) RequireLine(what string) (string, error) {
	text, ok := c.NextLine()
	if !ok {
		return "", c.Errorf("unexpected end of input reading %s", what)
	}
	return text, nil
}

// Errorf returns a StructuralError at the current position.
func (c *Cursor) Errorf(format string, args ...any) *diag.StructuralError {
	return &diag.StructuralError{Pos: c.Pos(), Msg: fmt.Sprintf(format, args...)}
}

// Wrap returns a StructuralError at the current position caused by err.
func (c *Cursor) Wrap(err error, format string, args ...any) *diag.StructuralError {
	return &diag.StructuralError{Pos: c.Pos(), Msg: fmt.Sprintf(format, args...), Err: err}
}

// UnknownTag returns an UnknownTagError at the current position.
func (c *Cursor) UnknownTag(context, tag string) *diag.UnknownTagError {
	return &diag.UnknownTagError{Pos: c.Pos(), Context: context, Tag: tag}
}

// ReadString reads a tilde-terminated string field. Lines are joined with "\n"
// until one ends in "~", which is removed along with trailing whitespace.
// Blank lines inside the string are kept.
func (c *Cursor) ReadString() (string, error) {
	var parts []string
	for {
		text, ok := c.rawLine()
		if !ok {
			return "", c.Errorf("unexpected end of input inside string field")
		}
		trimmed := strings.TrimRight(text, " \t")
		if strings.HasSuffix(trimmed, "~") {
			parts = append(parts, strings.TrimSuffix(trimmed, "~"))
			return strings.Join(parts, "\n"), nil
		}
		parts = append(parts, text)
	}
}

// ReadKeyValue splits the next line on its first ':' and trims both halves.
// A line without ':' yields the whole line as key and an empty value.
//
// Postcondition: ok is false once the cursor is exhausted.
func (c *Cursor) ReadKeyValue() (key, value string, ok bool) {
	text, ok := c.NextLine()
	if !ok {
		return "", "", false
	}
	k, v, found := strings.Cut(text, ":")
	if !found {
		return text, "", true
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), true
}

// ReadUntilStarts collects lines until one starting with marker. The
// terminating line is consumed and excluded.
func (c *Cursor) ReadUntilStarts(marker string) ([]string, error) {
	return c.readUntil(marker, func(text string) bool { return strings.HasPrefix(text, marker) })
}

// ReadUntilMatch collects lines until one equal to marker. The terminating
// line is consumed and excluded.
func (c *Cursor) ReadUntilMatch(marker string) ([]string, error) {
	return c.readUntil(marker, func(text string) bool { return text == marker })
}

func (c *Cursor) readUntil(marker string, stop func(string) bool) ([]string, error) {
	var out []string
	for {
		text, ok := c.NextLine()
		if !ok {
			return out, c.Errorf("unexpected end of input before terminator %q", marker)
		}
		if stop(text) {
			return out, nil
		}
		out = append(out, text)
	}
}

// Fields reads the next line and splits it on whitespace.
//
// Postcondition: len(fields) >= min or a StructuralError is returned.
func (c *Cursor) Fields(what string, min int) ([]string, error) {
	text, err := c.RequireLine(what)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(text)
	if len(fields) < min {
		return nil, c.Errorf("%s: expected at least %d fields, got %d in %q", what, min, len(fields), text)
	}
	return fields, nil
}

// Ints reads the next line as whitespace-separated integers.
//
// Postcondition: len(values) >= min or a StructuralError is returned.
func (c *Cursor) Ints(what string, min int) ([]int, error) {
	fields, err := c.Fields(what, min)
	if err != nil {
		return nil, err
	}
	return c.Atoi(what, fields...)
}

// Atoi converts fields to integers, reporting failures at the current position.
func (c *Cursor) Atoi(what string, fields ...string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, c.Wrap(err, "%s: field %d is not an integer", what, i+1)
		}
		out[i] = n
	}
	return out, nil
}

// Float converts a field to a float64, reporting failures at the current position.
func (c *Cursor) Float(what, field string) (float64, error) {
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, c.Wrap(err, "%s is not a number", what)
	}
	return f, nil
}

package cursor

import (
	"strconv"
	"strings"
)

func isTerminator(text string) bool {
	return text == "$" || text == "$~"
}

// isDelimiter reports whether text opens a record: the whole line is marker
// followed by an integer id, optionally closed by "~". Text such as
// "#5 silver coins" inside a description is not a delimiter. A string line
// holding nothing but "#<n>" is indistinguishable from one and still splits.
func isDelimiter(text, marker string) bool {
	rest, ok := strings.CutPrefix(text, marker)
	if !ok {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSuffix(rest, "~"))
	return err == nil
}

// SplitByDelimiter segments the remaining input into one sub-cursor per record.
// A record starts at a line made of marker followed by its id and includes that
// line. Lines before the first record are ignored, as is everything after a
// "$" or "$~" terminator line.
//
// Postcondition: an input without records yields an empty slice.
func (c *Cursor) SplitByDelimiter(marker string) []*Cursor {
	var out []*Cursor
	var cur *Cursor
	for c.pos < len(c.lines) {
		l := c.lines[c.pos]
		c.pos++
		c.last = l.no
		text := strings.TrimSpace(l.text)
		if isTerminator(text) {
			c.pos = len(c.lines)
			break
		}
		if isDelimiter(text, marker) {
			cur = &Cursor{file: c.file, record: c.record}
			out = append(out, cur)
		}
		if cur != nil {
			cur.lines = append(cur.lines, l)
		}
	}
	return out
}

// SplitBySeparator segments the remaining input on lines equal to sep.
// Separator lines are dropped, as are segments holding only blank lines.
func (c *Cursor) SplitBySeparator(sep string) []*Cursor {
	var out []*Cursor
	cur := &Cursor{file: c.file, record: c.record}
	flush := func() {
		if !cur.Done() {
			out = append(out, cur)
		}
		cur = &Cursor{file: c.file, record: c.record}
	}
	for c.pos < len(c.lines) {
		l := c.lines[c.pos]
		c.pos++
		c.last = l.no
		if strings.TrimSpace(l.text) == sep {
			flush()
			continue
		}
		cur.lines = append(cur.lines, l)
	}
	flush()
	return out
}

// ReadID consumes a "<marker><id>" line, attaches the id to the cursor and returns it.
// A trailing "~" after the id is tolerated.
func (c *Cursor) ReadID(marker string) (int, error) {
	text, err := c.RequireLine("record id")
	if err != nil {
		return 0, err
	}
	if !strings.HasPrefix(text, marker) {
		return 0, c.Errorf("expected %q record id, got %q", marker, text)
	}
	raw := strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(text, marker)), "~")
	ids, err := c.Atoi("record id", raw)
	if err != nil {
		return 0, err
	}
	c.SetRecord(ids[0])
	return ids[0], nil
}

// Preamble returns the non-blank lines before the first record delimiter
// without consuming them.
func (c *Cursor) Preamble(marker string) []string {
	var out []string
	for i := c.pos; i < len(c.lines); i++ {
		text := strings.TrimSpace(c.lines[i].text)
		if isDelimiter(text, marker) || isTerminator(text) {
			break
		}
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}

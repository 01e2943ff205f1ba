// Package zone decodes legacy zone reset files and assembles their flat,
// continuation-flagged instruction stream into a tree of loads.
package zone

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
)

// DefaultZoneFactor applies when the header line stops after the reset mode.
const DefaultZoneFactor = 100

// Header is the fixed preamble of a zone file.
type Header struct {
	ID         int
	Name       string
	Top        int
	Lifespan   int
	ResetMode  int
	ZoneFactor int
	Hemisphere int
	Climate    int
}

// Instruction is one reset command line.
//
// Commands taking fewer than three arguments leave the rest at -1.
type Instruction struct {
	Command  byte
	Continue bool
	Arg1     int
	Arg2     int
	Arg3     int
	Text     string
	Line     int
}

func (in Instruction) String() string {
	cont := 0
	if in.Continue {
		cont = 1
	}
	return fmt.Sprintf("%c %d %d %d %d %s", in.Command, cont, in.Arg1, in.Arg2, in.Arg3, in.Text)
}

// File is a decoded zone file before assembly.
type File struct {
	Header       Header
	Instructions []Instruction
}

// DecodeFile reads the zone header and its instruction lines up to "S" or "$".
// Lines starting with "*" are comments. Malformed instruction lines are
// reported on rep and skipped; the rest of the zone still decodes.
//
// Precondition: c is positioned at the "#id" line.
func DecodeFile(c *cursor.Cursor, rep *diag.Report) (File, error) {
	id, err := c.ReadID("#")
	if err != nil {
		return File{}, err
	}
	h := Header{ID: id, ZoneFactor: DefaultZoneFactor}

	name, err := c.RequireLine("zone name")
	if err != nil {
		return File{}, err
	}
	h.Name, _, _ = strings.Cut(name, "~")
	h.Name = strings.TrimSpace(h.Name)

	nums, err := c.Ints("zone header line", 3)
	if err != nil {
		return File{}, err
	}
	h.Top, h.Lifespan, h.ResetMode = nums[0], nums[1], nums[2]
	if len(nums) > 3 {
		h.ZoneFactor = nums[3]
	}
	if len(nums) > 4 {
		h.Hemisphere = nums[4]
	}
	if len(nums) > 5 {
		h.Climate = nums[5]
	}

	f := File{Header: h, Instructions: []Instruction{}}
	for {
		line, err := c.RequireLine("zone commands (expecting S)")
		if err != nil {
			return File{}, err
		}
		switch line[0] {
		case '*':
			continue
		case 'S', '$':
			return f, nil
		}
		in, err := ParseInstruction(line)
		if err != nil {
			rep.Warn(diag.Integrity, c.Pos(), "zone %d: %v; skipped", h.ID, err)
			continue
		}
		in.Line = c.LineNo()
		f.Instructions = append(f.Instructions, in)
	}
}

// minArgs is the number of leading integers, if-flag included, each command requires.
func minArgs(cmd byte) int {
	if strings.IndexByte("MOEPD", cmd) >= 0 {
		return 4
	}
	return 3
}

// ParseInstruction parses "<cmd> <if> <arg1> <arg2> [arg3] [text]". F carries
// only the if-flag followed by the command text to force.
func ParseInstruction(line string) (Instruction, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Instruction{}, fmt.Errorf("empty zone command")
	}
	in := Instruction{Command: line[0], Arg1: -1, Arg2: -1, Arg3: -1}
	rest := line[1:]

	limit, need := 4, minArgs(in.Command)
	if in.Command == 'F' {
		limit, need = 1, 1
	}
	ints, text := leadingInts(rest, limit)
	if len(ints) < need {
		return Instruction{}, fmt.Errorf("zone command %q: expected %d numbers, got %d", line, need, len(ints))
	}
	in.Continue = ints[0] != 0
	args := []*int{&in.Arg1, &in.Arg2, &in.Arg3}
	for i, v := range ints[1:] {
		*args[i] = v
	}
	in.Text = text
	return in, nil
}

// leadingInts consumes up to limit whitespace-separated integers from s and
// returns them with the untouched remainder.
func leadingInts(s string, limit int) ([]int, string) {
	var out []int
	for len(out) < limit {
		s = strings.TrimLeft(s, " \t")
		end := strings.IndexAny(s, " \t")
		if end < 0 {
			end = len(s)
		}
		v, err := strconv.Atoi(s[:end])
		if err != nil {
			break
		}
		out = append(out, v)
		s = s[end:]
	}
	return out, strings.TrimSpace(s)
}

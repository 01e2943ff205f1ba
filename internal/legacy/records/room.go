package records

import (
	"strconv"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/flags"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
)

// Exit flag positions within tables.ExitFlags.
const (
	ExitIsDoor    = 0
	ExitClosed    = 1
	ExitLocked    = 2
	ExitPickProof = 3
	ExitHidden    = 4
	ExitDescript  = 5
)

// Exit is one direction leaving a room.
type Exit struct {
	Direction   int
	Description string
	Keywords    []string
	Flags       flags.Set
	Key         int
	ToRoom      int
}

// IsDoor reports whether the exit has a door.
func (e Exit) IsDoor() bool { return e.Flags.Has(ExitIsDoor) }

// Room is a decoded room.
type Room struct {
	ID          int
	Name        string
	Description string
	Zone        int
	Flags       flags.Set
	Sector      int

	// Exits are kept in file order. A repeated direction replaces the earlier exit.
	Exits             []Exit
	ExtraDescriptions []ExtraDescription
	Triggers          []int
}

// DecodeRoom decodes one room record.
//
// Precondition: c is positioned at the record's "#id" line.
func DecodeRoom(c *cursor.Cursor, rep *diag.Report) (Room, error) {
	id, err := c.ReadID("#")
	if err != nil {
		return Room{}, err
	}
	r := Room{ID: id, Exits: []Exit{}, ExtraDescriptions: []ExtraDescription{}, Triggers: []int{}}

	if r.Name, err = c.ReadString(); err != nil {
		return Room{}, err
	}
	if r.Description, err = c.ReadString(); err != nil {
		return Room{}, err
	}

	fields, err := c.Fields("room flags line", 3)
	if err != nil {
		return Room{}, err
	}
	nums, err := c.Atoi("room flags line", fields[0], fields[2])
	if err != nil {
		return Room{}, err
	}
	r.Zone, r.Sector = nums[0], nums[1]
	if r.Flags, err = flags.Decode(fields[1], tables.RoomFlags, 0); err != nil {
		return Room{}, c.Wrap(err, "room flags")
	}

	for {
		line, err := c.RequireLine("room tail (expecting D/E/S)")
		if err != nil {
			return Room{}, err
		}
		switch line[0] {
		case 'D':
			dir, err := strconv.Atoi(strings.TrimSpace(line[1:]))
			if err != nil {
				return Room{}, c.Wrap(err, "exit direction in %q", line)
			}
			ex, err := decodeExit(c, dir)
			if err != nil {
				return Room{}, err
			}
			r.Exits = r.setExit(c, rep, ex)
		case 'E':
			ed, err := readExtraDescription(c)
			if err != nil {
				return Room{}, err
			}
			r.ExtraDescriptions = append(r.ExtraDescriptions, ed)
		case 'S':
			for {
				line, ok := c.NextLine()
				if !ok {
					return r, nil
				}
				if line[0] != 'T' {
					return Room{}, c.UnknownTag("room trailer", line)
				}
				tid, err := readTriggerRef(c, line)
				if err != nil {
					return Room{}, err
				}
				r.Triggers = append(r.Triggers, tid)
			}
		default:
			return Room{}, c.UnknownTag("room tail", line)
		}
	}
}

func (r Room) setExit(c *cursor.Cursor, rep *diag.Report, ex Exit) []Exit {
	for i, e := range r.Exits {
		if e.Direction == ex.Direction {
			rep.Warn(diag.Integrity, c.Pos(), "room %d defines direction %d twice; keeping the last", r.ID, ex.Direction)
			r.Exits[i] = ex
			return r.Exits
		}
	}
	return append(r.Exits, ex)
}

func decodeExit(c *cursor.Cursor, dir int) (Exit, error) {
	ex := Exit{Direction: dir}
	var err error
	if ex.Description, err = c.ReadString(); err != nil {
		return Exit{}, err
	}
	kw, err := c.ReadString()
	if err != nil {
		return Exit{}, err
	}
	ex.Keywords = Keywords(kw)

	t, err := c.Ints("exit line", 3)
	if err != nil {
		return Exit{}, err
	}
	ex.Key, ex.ToRoom = t[1], t[2]
	switch t[0] {
	case 1:
		ex.Flags = flags.Of(tables.ExitFlags, ExitIsDoor)
	case 2:
		ex.Flags = flags.Of(tables.ExitFlags, ExitIsDoor, ExitPickProof)
	case 3:
		ex.Flags = flags.Of(tables.ExitFlags, ExitDescript)
		ex.Key, ex.ToRoom = -1, -1
	default:
		ex.Flags = flags.Empty(tables.ExitFlags)
	}
	return ex, nil
}

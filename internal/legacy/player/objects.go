package player

import (
	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
	"github.com/cory-johannsen/mudconvert/internal/legacy/values"
)

const (
	objectFileVersion = "1"
	objectSeparator   = "~~"
	// LocationInventory marks an object carried rather than worn.
	LocationInventory = 127
)

// Objects is the decoded object file of one player.
type Objects struct {
	Inventory []Record
	Equipment map[string]Record
}

// DecodeObjects reads the version line and the "~~"-separated object records.
//
// A record's location places it: 127 is inventory, a wear slot puts it in
// Equipment, and a negative value -n nests it n levels below the most recent
// inventory or equipment root, following the last content at each level.
// Nested objects are stored under the "contains" key of their container.
func DecodeObjects(c *cursor.Cursor, layout values.Layout, rep *diag.Report) (Objects, error) {
	out := Objects{Inventory: []Record{}, Equipment: map[string]Record{}}
	version, ok := c.NextLine()
	if !ok {
		return out, nil
	}
	if version != objectFileVersion {
		rep.Warn(diag.Integrity, c.Pos(), "unsupported object file version %q", version)
	}

	var root Record
	for _, seg := range c.SplitBySeparator(objectSeparator) {
		rec, err := Decode(seg, KindObject, layout, rep)
		if err != nil {
			return Objects{}, err
		}
		loc, ok := rec.Int("location")
		if !ok {
			return Objects{}, seg.Errorf("object record has no location")
		}
		delete(rec, "location")

		switch {
		case loc < 0:
			if err := nest(seg, root, -loc, rec); err != nil {
				return Objects{}, err
			}
		case loc == LocationInventory:
			out.Inventory = append(out.Inventory, rec)
			root = rec
		case loc < len(tables.WearLocations):
			slot := tables.WearLocations[loc]
			if _, dup := out.Equipment[slot]; dup {
				rep.Warn(diag.Integrity, seg.Pos(), "two objects worn at %s; keeping the last", slot)
			}
			out.Equipment[slot] = rec
			root = rec
		default:
			rep.Warn(diag.Fallback, seg.Pos(), "object location %d is not a wear slot; moved to inventory", loc)
			out.Inventory = append(out.Inventory, rec)
			root = rec
		}
	}
	return out, nil
}

func nest(c *cursor.Cursor, root Record, depth int, rec Record) error {
	if root == nil {
		return c.Errorf("object at depth %d has no container", depth)
	}
	parent := root
	for i := 1; i < depth; i++ {
		contents, _ := parent["contains"].([]Record)
		if len(contents) == 0 {
			return c.Errorf("object at depth %d has no container at depth %d", depth, i)
		}
		parent = contents[len(contents)-1]
	}
	contents, _ := parent["contains"].([]Record)
	parent["contains"] = append(contents, rec)
	return nil
}

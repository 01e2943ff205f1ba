package zone

import (
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
)

// assembler holds the open builders while the instruction stream is folded
// into a Tree. Children attach by stream position, never by id lookup.
type assembler struct {
	rep  *diag.Report
	zone int
	tree Tree

	mob *MobileLoad
	obj *ObjectLoad
	// open is the chain of items that P may still put into: open[0] is the
	// item directly under the current root, each later entry sits inside the
	// one before it.
	open []*Item
	door *DoorReset
}

// Assemble folds f's instructions into a Tree. Integrity problems are
// reported on rep; a bad instruction is skipped without losing the rest.
func Assemble(f File, rep *diag.Report) Tree {
	a := &assembler{rep: rep, zone: f.Header.ID, tree: Tree{Nodes: []Node{}}}
	for _, in := range f.Instructions {
		a.step(in)
	}
	return a.tree
}

func (a *assembler) warn(in Instruction, format string, args ...any) {
	pos := diag.Position{File: a.rep.File, Line: in.Line, Record: a.zone}
	a.rep.Warn(diag.Integrity, pos, format, args...)
}

// closeRoots ends the current mobile or object root and its open items.
func (a *assembler) closeRoots() {
	a.mob, a.obj, a.open = nil, nil, nil
}

func (a *assembler) step(in Instruction) {
	if in.Command != 'D' {
		a.door = nil
	}
	switch in.Command {
	case 'M':
		a.closeRoots()
		a.mob = &MobileLoad{
			MobileID: in.Arg1, Max: in.Arg2, Room: in.Arg3, Name: in.Text,
			Equipped: []*Item{}, Carried: []*Item{}, Line: in.Line,
		}
		a.tree.Nodes = append(a.tree.Nodes, a.mob)
	case 'O':
		a.closeRoots()
		item := newItem(in, -1)
		a.obj = &ObjectLoad{Room: in.Arg3, Object: item}
		a.open = []*Item{item}
		a.tree.Nodes = append(a.tree.Nodes, a.obj)
	case 'E', 'G':
		a.give(in)
	case 'P':
		a.put(in)
	case 'D':
		a.closeRoots()
		a.setDoor(in)
	case 'R':
		a.closeRoots()
		a.tree.Nodes = append(a.tree.Nodes, &RemoveObject{Room: in.Arg1, ObjectID: in.Arg2, Name: in.Text, Line: in.Line})
	case 'F':
		target := -1
		if a.mob != nil {
			target = a.mob.MobileID
		} else {
			a.warn(in, "force %q with no mobile loaded", in.Text)
		}
		a.tree.Nodes = append(a.tree.Nodes, &Force{MobileID: target, Command: in.Text, Line: in.Line})
	default:
		a.warn(in, "unknown zone command %q; skipped", in.String())
	}
}

func newItem(in Instruction, slot int) *Item {
	return &Item{ObjectID: in.Arg1, Max: in.Arg2, Slot: slot, Name: in.Text, Contents: []*Item{}, Line: in.Line}
}

// give attaches an E or G to the open mobile and makes it the only open item.
func (a *assembler) give(in Instruction) {
	if a.mob == nil {
		a.warn(in, "%c for object %d with no mobile loaded; skipped", in.Command, in.Arg1)
		return
	}
	if !in.Continue {
		a.warn(in, "%c for object %d lacks the continuation flag", in.Command, in.Arg1)
	}
	if in.Command == 'E' {
		item := newItem(in, in.Arg3)
		a.mob.Equipped = append(a.mob.Equipped, item)
		a.open = []*Item{item}
		return
	}
	item := newItem(in, -1)
	a.mob.Carried = append(a.mob.Carried, item)
	a.open = []*Item{item}
}

// put attaches a P to the innermost open item whose id matches arg3, falling
// back to the most recently opened item when none does.
func (a *assembler) put(in Instruction) {
	if len(a.open) == 0 {
		a.warn(in, "put of object %d into %d with no open container; skipped", in.Arg1, in.Arg3)
		return
	}
	if !in.Continue {
		a.warn(in, "put of object %d lacks the continuation flag", in.Arg1)
	}
	parent := len(a.open) - 1
	for i := len(a.open) - 1; i >= 0; i-- {
		if a.open[i].ObjectID == in.Arg3 {
			parent = i
			break
		}
	}
	if a.open[parent].ObjectID != in.Arg3 {
		a.warn(in, "put of object %d names container %d but the open container is %d",
			in.Arg1, in.Arg3, a.open[parent].ObjectID)
	}
	item := newItem(in, -1)
	a.open[parent].Contents = append(a.open[parent].Contents, item)
	a.open = append(a.open[:parent+1], item)
}

func (a *assembler) setDoor(in Instruction) {
	if _, ok := DoorStateNames(in.Arg3); !ok {
		a.warn(in, "door state %d out of range", in.Arg3)
	}
	if in.Continue && a.door != nil {
		if a.door.Room == in.Arg1 && a.door.Direction == in.Arg2 {
			a.door.States = append(a.door.States, in.Arg3)
			return
		}
		a.warn(in, "door continuation for room %d direction %d follows room %d direction %d",
			in.Arg1, in.Arg2, a.door.Room, a.door.Direction)
	}
	a.door = &DoorReset{Room: in.Arg1, Direction: in.Arg2, States: []int{in.Arg3}, Name: in.Text, Line: in.Line}
	a.tree.Nodes = append(a.tree.Nodes, a.door)
}

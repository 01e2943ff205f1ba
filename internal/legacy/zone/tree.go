package zone

// Node is one top-level reset in a Tree: a *MobileLoad, *ObjectLoad,
// *DoorReset, *RemoveObject or *Force.
type Node interface {
	isNode()
}

// Item is an object placed by a reset together with the objects put inside it.
type Item struct {
	ObjectID int
	Max      int
	// Slot is the wear location for equipped items and -1 otherwise.
	Slot     int
	Name     string
	Contents []*Item
	Line     int
}

// MobileLoad loads a mobile into a room and outfits it.
type MobileLoad struct {
	MobileID int
	Max      int
	Room     int
	Name     string
	Equipped []*Item
	Carried  []*Item
	Line     int
}

// ObjectLoad loads an object, and whatever is put inside it, into a room.
type ObjectLoad struct {
	Room   int
	Object *Item
}

// DoorReset sets the state of one door. Continuation lines for the same
// room and direction append further states.
type DoorReset struct {
	Room      int
	Direction int
	States    []int
	Name      string
	Line      int
}

// RemoveObject removes an object from a room.
type RemoveObject struct {
	Room     int
	ObjectID int
	Name     string
	Line     int
}

// Force makes the most recently loaded mobile run a command.
// MobileID is -1 when no mobile was open.
type Force struct {
	MobileID int
	Command  string
	Line     int
}

func (*MobileLoad) isNode() {}
func (*ObjectLoad) isNode() {}
func (*DoorReset) isNode() {}
func (*RemoveObject) isNode() {}
func (*Force) isNode() {}

// Tree is the assembled reset program of one zone, in file order.
type Tree struct {
	Nodes []Node
}

// Doors returns the door resets of t in file order.
func (t Tree) Doors() []*DoorReset {
	var out []*DoorReset
	for _, n := range t.Nodes {
		if d, ok := n.(*DoorReset); ok {
			out = append(out, d)
		}
	}
	return out
}

// Door states as stored in the third argument of a D command.
const (
	DoorOpen = iota
	DoorClosed
	DoorLocked
	DoorHidden
	DoorHiddenClosedLocked
	DoorHiddenClosed
)

var doorStates = [][]string{
	DoorOpen:               {"OPEN"},
	DoorClosed:             {"CLOSED"},
	DoorLocked:             {"LOCKED"},
	DoorHidden:             {"HIDDEN"},
	DoorHiddenClosedLocked: {"HIDDEN", "CLOSED", "LOCKED"},
	DoorHiddenClosed:       {"HIDDEN", "CLOSED"},
}

// DoorStateNames expands a door state into its component conditions.
//
// Postcondition: ok is false for states outside the known range.
func DoorStateNames(state int) ([]string, bool) {
	if state < 0 || state >= len(doorStates) {
		return nil, false
	}
	out := make([]string, len(doorStates[state]))
	copy(out, doorStates[state])
	return out, true
}

package values

import (
	"fmt"
	"strings"
)

// ContainerFlag is one bit of a container's v1 lock state.
type ContainerFlag int

const (
	Closeable ContainerFlag = iota
	PickProof
	Closed
	Locked
)

func (f ContainerFlag) String() string {
	switch f {
	case Closeable:
		return "closeable"
	case PickProof:
		return "pickproof"
	case Closed:
		return "closed"
	case Locked:
		return "locked"
	default:
		return fmt.Sprintf("container_flag(%d)", int(f))
	}
}

// Layout fixes the meaning of positions inside a value tuple that differ
// between file generations. Only the container lock bits differ between the
// presets; LightRemaining and DrinkRemaining are the same in both.
type Layout struct {
	Name string
	// ContainerBits[i] is the flag carried by bit i of a container's v1.
	ContainerBits [4]ContainerFlag
	// LightRemaining is the index of a light's remaining hours.
	LightRemaining int
	// DrinkRemaining is the index of a drink container's remaining drinks.
	DrinkRemaining int
}

// LayoutV1 is the bit order of the engine's own object headers (CLOSEABLE=1,
// PICKPROOF=2, CLOSED=4, LOCKED=8). Files saved by the engine need this layout.
var LayoutV1 = Layout{
	Name:           "v1",
	ContainerBits:  [4]ContainerFlag{Closeable, PickProof, Closed, Locked},
	LightRemaining: 2,
	DrinkRemaining: 1,
}

// LayoutV2 orders the lock bits closeable, closed, locked, pickproof. It is the
// default, so engine-written files must be imported with "v1".
var LayoutV2 = Layout{
	Name:           "v2",
	ContainerBits:  [4]ContainerFlag{Closeable, Closed, Locked, PickProof},
	LightRemaining: 2,
	DrinkRemaining: 1,
}

// DefaultLayout is used when configuration does not name one.
var DefaultLayout = LayoutV2

// LayoutByName resolves a configured layout name.
func LayoutByName(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "v2":
		return LayoutV2, nil
	case "v1":
		return LayoutV1, nil
	default:
		return Layout{}, fmt.Errorf("values: unknown layout %q", name)
	}
}

package zone_test

import (
	"fmt"
	"testing"

	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func decode(t *testing.T, in string) (zone.File, *diag.Report) {
	t.Helper()
	rep := diag.NewReport("30.zon")
	f, err := zone.DecodeFile(cursor.FromString("30.zon", in), rep)
	require.NoError(t, err)
	return f, rep
}

func TestDecodeFile_Header(t *testing.T) {
	f, rep := decode(t, "#30\nNorthern Midgaard~\n3099 15 2 120 1 4\n*comment\nS\n$\n")
	assert.Empty(t, rep.Warnings)
	assert.Equal(t, zone.Header{
		ID: 30, Name: "Northern Midgaard", Top: 3099, Lifespan: 15, ResetMode: 2,
		ZoneFactor: 120, Hemisphere: 1, Climate: 4,
	}, f.Header)
	assert.Empty(t, f.Instructions)
}

func TestDecodeFile_DefaultZoneFactor(t *testing.T) {
	f, _ := decode(t, "#12\nTest~\n1299 30 1\nS\n")
	assert.Equal(t, zone.DefaultZoneFactor, f.Header.ZoneFactor)
	assert.Equal(t, 0, f.Header.Climate)
}

func TestDecodeFile_MissingTerminator(t *testing.T) {
	rep := diag.NewReport("30.zon")
	_, err := zone.DecodeFile(cursor.FromString("30.zon", "#30\nx~\n1 2 3\nM 0 1 1 1\n"), rep)
	require.Error(t, err)
	assert.True(t, diag.IsFatal(err))
}

func TestDecodeFile_MalformedLineIsSkipped(t *testing.T) {
	f, rep := decode(t, "#30\nx~\n3099 15 2\nM 0 100\nO 0 3010 5 3001 a bread\nS\n")
	require.Len(t, f.Instructions, 1)
	assert.Equal(t, byte('O'), f.Instructions[0].Command)
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, diag.Integrity, rep.Warnings[0].Kind)
}

func TestParseInstruction(t *testing.T) {
	cases := []struct {
		line string
		want zone.Instruction
	}{
		{"M 0 3000 1 3001 the wizard", zone.Instruction{Command: 'M', Arg1: 3000, Arg2: 1, Arg3: 3001, Text: "the wizard"}},
		{"E 1 3020 100 16", zone.Instruction{Command: 'E', Continue: true, Arg1: 3020, Arg2: 100, Arg3: 16}},
		{"G 1 3021 5", zone.Instruction{Command: 'G', Continue: true, Arg1: 3021, Arg2: 5, Arg3: -1}},
		{"R 0 3001 3099\t(a fountain)", zone.Instruction{Command: 'R', Arg1: 3001, Arg2: 3099, Arg3: -1, Text: "(a fountain)"}},
		{"F 1 say 42 hello", zone.Instruction{Command: 'F', Continue: true, Arg1: -1, Arg2: -1, Arg3: -1, Text: "say 42 hello"}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := zone.ParseInstruction(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseInstruction_TooFewArgs(t *testing.T) {
	for _, line := range []string{"M 0 1 2", "P 1 2", "G 1", "F", ""} {
		_, err := zone.ParseInstruction(line)
		assert.Error(t, err, line)
	}
}

func TestAssemble_MobileEquipPut(t *testing.T) {
	f, rep := decode(t, "#30\nx~\n3099 15 2\nM 0 100 1 3000\nE 1 200 1 16\nP 1 201 1 200\nS\n")
	tree := zone.Assemble(f, rep)
	assert.Empty(t, rep.Warnings)
	require.Len(t, tree.Nodes, 1)

	m, ok := tree.Nodes[0].(*zone.MobileLoad)
	require.True(t, ok)
	assert.Equal(t, 100, m.MobileID)
	assert.Equal(t, 3000, m.Room)
	require.Len(t, m.Equipped, 1)
	assert.Equal(t, 200, m.Equipped[0].ObjectID)
	assert.Equal(t, 16, m.Equipped[0].Slot)
	require.Len(t, m.Equipped[0].Contents, 1)
	assert.Equal(t, 201, m.Equipped[0].Contents[0].ObjectID)
	assert.Empty(t, m.Carried)
}

func TestAssemble_NestedPutsWalkBackUpTheStack(t *testing.T) {
	f, rep := decode(t, `#30
x~
3099 15 2
O 0 10 1 3001 a chest
P 1 11 1 10 a bag
P 1 12 1 11 a pouch
P 1 13 1 10 a coin
S
`)
	tree := zone.Assemble(f, rep)
	assert.Empty(t, rep.Warnings)
	require.Len(t, tree.Nodes, 1)
	o := tree.Nodes[0].(*zone.ObjectLoad)
	assert.Equal(t, 3001, o.Room)
	chest := o.Object
	require.Len(t, chest.Contents, 2)
	assert.Equal(t, 11, chest.Contents[0].ObjectID)
	assert.Equal(t, 13, chest.Contents[1].ObjectID)
	require.Len(t, chest.Contents[0].Contents, 1)
	assert.Equal(t, 12, chest.Contents[0].Contents[0].ObjectID)
}

func TestAssemble_ParentMismatchWarns(t *testing.T) {
	f, rep := decode(t, "#30\nx~\n3099 15 2\nM 0 100 1 3000\nG 1 200 1\nP 1 201 1 999\nS\n")
	tree := zone.Assemble(f, rep)
	m := tree.Nodes[0].(*zone.MobileLoad)
	require.Len(t, m.Carried, 1)
	require.Len(t, m.Carried[0].Contents, 1, "the put still attaches to the open container")
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0].Msg, "999")
}

func TestAssemble_OrphansAndUnknownsAreSkipped(t *testing.T) {
	f, rep := decode(t, `#30
x~
3099 15 2
E 1 200 1 16
P 1 201 1 200
Z 0 1 2 3
O 0 10 1 3001
S
`)
	tree := zone.Assemble(f, rep)
	require.Len(t, tree.Nodes, 1)
	assert.IsType(t, &zone.ObjectLoad{}, tree.Nodes[0])
	assert.Len(t, rep.Warnings, 3)
	assert.False(t, rep.HasFatal())
}

func TestAssemble_DoorsAccumulate(t *testing.T) {
	f, rep := decode(t, `#30
x~
3099 15 2
D 0 3001 0 1
D 1 3001 0 2
D 0 3002 2 4
D 1 3003 1 0
R 0 3001 3099
S
`)
	tree := zone.Assemble(f, rep)
	doors := tree.Doors()
	require.Len(t, doors, 3)
	assert.Equal(t, []int{1, 2}, doors[0].States)
	assert.Equal(t, []int{4}, doors[1].States)
	assert.Equal(t, 3003, doors[2].Room)
	require.Len(t, rep.Warnings, 1, "continuation for a different door")

	rm, ok := tree.Nodes[len(tree.Nodes)-1].(*zone.RemoveObject)
	require.True(t, ok)
	assert.Equal(t, zone.RemoveObject{Room: 3001, ObjectID: 3099, Line: rm.Line}, *rm)
}

func TestAssemble_ForceTargetsOpenMobile(t *testing.T) {
	f, rep := decode(t, "#30\nx~\n3099 15 2\nM 0 100 1 3000\nF 1 wear all\nS\n")
	tree := zone.Assemble(f, rep)
	require.Len(t, tree.Nodes, 2)
	force := tree.Nodes[1].(*zone.Force)
	assert.Equal(t, 100, force.MobileID)
	assert.Equal(t, "wear all", force.Command)
	assert.Empty(t, rep.Warnings)
}

func TestDoorStateNames(t *testing.T) {
	names, ok := zone.DoorStateNames(zone.DoorHiddenClosedLocked)
	require.True(t, ok)
	assert.Equal(t, []string{"HIDDEN", "CLOSED", "LOCKED"}, names)
	_, ok = zone.DoorStateNames(6)
	assert.False(t, ok)
}

// Every P placed directly after its parent ends up somewhere in the tree,
// so total item count equals the number of object instructions.
func TestAssemble_ItemCount_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "puts")
		in := "#30\nx~\n3099 15 2\nO 0 1 1 3001\n"
		parent := 1
		for i := 0; i < n; i++ {
			id := i + 2
			in += fmt.Sprintf("P 1 %d 1 %d\n", id, parent)
			if rapid.Bool().Draw(t, "descend") {
				parent = id
			}
		}
		in += "S\n"
		rep := diag.NewReport("p.zon")
		f, err := zone.DecodeFile(cursor.FromString("p.zon", in), rep)
		if err != nil {
			t.Fatal(err)
		}
		tree := zone.Assemble(f, rep)
		if len(rep.Warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", rep.Warnings)
		}
		var count func(*zone.Item) int
		count = func(it *zone.Item) int {
			c := 1
			for _, ch := range it.Contents {
				c += count(ch)
			}
			return c
		}
		if got := count(tree.Nodes[0].(*zone.ObjectLoad).Object); got != n+1 {
			t.Fatalf("got %d items, want %d", got, n+1)
		}
	})
}

package tables_test

import (
	"testing"

	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Name(t *testing.T) {
	assert.Equal(t, "LIGHT", tables.ObjectTypes.Name(1))
	assert.Equal(t, "UNKNOWN(99)", tables.ObjectTypes.Name(99))
	assert.Equal(t, "UNKNOWN(-1)", tables.ObjectTypes.Name(-1))
}

func TestTable_Index(t *testing.T) {
	i, ok := tables.ObjectTypes.Index("container")
	require.True(t, ok)
	assert.Equal(t, 15, i)

	i, ok = tables.ObjectTypes.Index("UNKNOWN(77)")
	require.True(t, ok)
	assert.Equal(t, 77, i)

	_, ok = tables.ObjectTypes.Index("bogus")
	assert.False(t, ok)
}

func TestTable_LeadingName(t *testing.T) {
	i, n, ok := tables.ObjectTypes.LeadingName("WEAPON sword")
	require.True(t, ok)
	assert.Equal(t, 5, i)
	assert.Equal(t, 6, n)

	i, _, ok = tables.ObjectTypes.LeadingName("trap")
	require.True(t, ok)
	assert.Equal(t, 14, i)

	_, _, ok = tables.ObjectTypes.LeadingName("15")
	assert.False(t, ok)
}

func TestTable_EnumName(t *testing.T) {
	assert.Equal(t, "standing", tables.Positions.EnumName("position", 3))
	assert.Equal(t, "unknown_position_9", tables.Positions.EnumName("position", 9))
}

func TestTables_Distinct(t *testing.T) {
	for name, table := range map[string]tables.Table{
		"effects":      tables.Effects,
		"object flags": tables.ObjectFlags,
		"mob flags":    tables.MobFlags,
		"room flags":   tables.RoomFlags,
		"wear flags":   tables.WearFlags,
	} {
		seen := map[string]bool{}
		for _, n := range table {
			assert.False(t, seen[n], "%s: duplicate name %q", name, n)
			seen[n] = true
		}
	}
}

func TestSkillName(t *testing.T) {
	assert.Equal(t, "SPELL_ARMOR", tables.SkillName(1))
	assert.Equal(t, "UNKNOWN(100000)", tables.SkillName(100000))
}

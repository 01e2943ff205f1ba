package flags_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/cory-johannsen/mudconvert/internal/legacy/flags"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIsInteger(t *testing.T) {
	for _, s := range []string{"0", "17", "-1", "-2147483648", "4294967295"} {
		assert.True(t, flags.IsInteger(s), s)
	}
	for _, s := range []string{"", "-", "abc", "1a", "a1", " 1", "+1", "1.0"} {
		assert.False(t, flags.IsInteger(s), s)
	}
}

func TestDecode_Letters(t *testing.T) {
	s, err := flags.Decode("adA", tables.RoomFlags, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 26}, s.Positions())
	assert.Equal(t, []string{tables.RoomFlags[0], tables.RoomFlags[3], tables.RoomFlags[26]}, s.Names())
}

func TestDecode_Integer(t *testing.T) {
	s, err := flags.Decode("9", tables.MobFlags, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, s.Positions())
}

func TestDecode_ZeroAndEmpty(t *testing.T) {
	for _, raw := range []string{"0", "", "  "} {
		s, err := flags.Decode(raw, tables.Effects, 0)
		require.NoError(t, err)
		assert.True(t, s.IsEmpty())
	}
}

func TestDecode_InvalidCharacter(t *testing.T) {
	_, err := flags.Decode("ab!", tables.Effects, 0)
	assert.Error(t, err)
	_, err = flags.Decode("99999999999", tables.Effects, 0)
	assert.Error(t, err)
}

func TestDecode_ExtensionOffset(t *testing.T) {
	base, err := flags.Decode("b", tables.Effects, 0)
	require.NoError(t, err)
	ext, err := flags.Decode("c", tables.Effects, 32)
	require.NoError(t, err)
	all := base.Union(ext)
	assert.Equal(t, []int{1, 34}, all.Positions())
	assert.Equal(t, tables.Effects[34], all.Names()[1])
	assert.Equal(t, []int{2}, all.Word(1).Positions())
}

func TestNames_UnknownPositionsPreserved(t *testing.T) {
	s := flags.Of(tables.ShopFlags, 0, 40)
	names := s.Names()
	assert.Equal(t, []string{"WILL_START_FIGHT", "UNKNOWN(40)"}, names)

	back, err := flags.Parse(names, tables.ShopFlags)
	require.NoError(t, err)
	assert.True(t, s.Equal(back))
}

func TestParse_UnknownName(t *testing.T) {
	_, err := flags.Parse([]string{"NOT_A_FLAG"}, tables.ShopFlags)
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	got, err := flags.Encode(flags.Of(tables.RoomFlags, 0, 25, 26, 51))
	require.NoError(t, err)
	assert.Equal(t, "azAZ", got)

	got, err = flags.Encode(flags.Empty(tables.RoomFlags))
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	_, err = flags.Encode(flags.Of(tables.RoomFlags, 52))
	assert.Error(t, err)
}

// TestSignBit documents the one boundary of integer mode: bit 31 is the sign
// bit, so a set holding it always has a negative integer form.
func TestSignBit(t *testing.T) {
	s, err := flags.Decode(strconv.Itoa(math.MinInt32), tables.Effects, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{31}, s.Positions())

	letters, err := flags.Encode(s)
	require.NoError(t, err)
	assert.Equal(t, "F", letters)

	back, err := flags.Decode(letters, tables.Effects, 0)
	require.NoError(t, err)
	assert.True(t, s.Equal(back))

	n, err := flags.EncodeInt(back)
	require.NoError(t, err)
	assert.Equal(t, "-2147483648", n)

	unsigned, err := flags.Decode("2147483648", tables.Effects, 0)
	require.NoError(t, err)
	assert.True(t, s.Equal(unsigned), "unsigned spelling of the sign bit decodes to the same set")
}

func TestEncodeInt_RejectsExtensionBits(t *testing.T) {
	_, err := flags.EncodeInt(flags.Of(tables.Effects, 32))
	assert.Error(t, err)
}

func TestSet_HasName(t *testing.T) {
	s := flags.Of(tables.ExitFlags, 0, 3)
	assert.True(t, s.HasName("EX_ISDOOR"))
	assert.True(t, s.HasName("ex_pickproof"))
	assert.False(t, s.HasName("EX_CLOSED"))
}

// TestRoundTrip_Property verifies decode(encode(decodeInt(n))) preserves the set
// for every 32-bit n, and that the integer form round-trips back to n.
func TestRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.Int32().Draw(rt, "n")
		raw := strconv.Itoa(int(n))

		fromInt, err := flags.Decode(raw, tables.MobFlags, 0)
		require.NoError(rt, err)

		letters, err := flags.Encode(fromInt)
		require.NoError(rt, err)
		fromLetters, err := flags.Decode(letters, tables.MobFlags, 0)
		require.NoError(rt, err)
		assert.True(rt, fromInt.Equal(fromLetters), "letter form %q must preserve %v", letters, fromInt.Positions())

		back, err := flags.EncodeInt(fromLetters)
		require.NoError(rt, err)
		assert.Equal(rt, raw, back)
	})
}

// TestNamesParse_Property verifies Parse(s.Names()) == s, including positions
// beyond the domain table.
func TestNamesParse_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		positions := rapid.SliceOfN(rapid.IntRange(0, 95), 0, 20).Draw(rt, "positions")
		s := flags.Of(tables.ObjectFlags, positions...)
		back, err := flags.Parse(s.Names(), tables.ObjectFlags)
		require.NoError(rt, err)
		assert.True(rt, s.Equal(back))
	})
}

// Package flags decodes and encodes the dual-mode flag fields of legacy files.
//
// A flag field is either a signed 32-bit decimal integer or a packed letter set
// where 'a'..'z' are bits 0..25 and 'A'..'Z' are bits 26..51. Bits beyond the
// first word arrive on extension lines and are placed at 32 * generation.
package flags

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
)

// MaxLetterBit is the highest position expressible in letter form.
const MaxLetterBit = 51

// GenerationWidth is the bit offset between a flag word and its extension line.
const GenerationWidth = 32

// Set is an ordered set of bit positions resolved against one domain table.
//
// Invariant: positions are unique and ascending.
type Set struct {
	domain    tables.Table
	positions []int
}

// Empty returns an empty set over domain.
func Empty(domain tables.Table) Set {
	return Set{domain: domain}
}

// Of returns a set over domain holding positions.
//
// Precondition: every position is >= 0.
func Of(domain tables.Table, positions ...int) Set {
	s := Set{domain: domain}
	for _, p := range positions {
		s = s.with(p)
	}
	return s
}

func (s Set) with(p int) Set {
	i := sort.SearchInts(s.positions, p)
	if i < len(s.positions) && s.positions[i] == p {
		return s
	}
	out := make([]int, 0, len(s.positions)+1)
	out = append(out, s.positions[:i]...)
	out = append(out, p)
	out = append(out, s.positions[i:]...)
	return Set{domain: s.domain, positions: out}
}

// Domain returns the table the set resolves against.
func (s Set) Domain() tables.Table { return s.domain }

// Has reports whether position p is set.
func (s Set) Has(p int) bool {
	i := sort.SearchInts(s.positions, p)
	return i < len(s.positions) && s.positions[i] == p
}

// HasName reports whether the flag called name is set.
func (s Set) HasName(name string) bool {
	p, ok := s.domain.Index(name)
	return ok && s.Has(p)
}

// Len returns the number of set positions.
func (s Set) Len() int { return len(s.positions) }

// IsEmpty reports whether no position is set.
func (s Set) IsEmpty() bool { return len(s.positions) == 0 }

// Positions returns a copy of the set positions in ascending order.
func (s Set) Positions() []int {
	out := make([]int, len(s.positions))
	copy(out, s.positions)
	return out
}

// Equal compares positions only.
func (s Set) Equal(o Set) bool {
	if len(s.positions) != len(o.positions) {
		return false
	}
	for i := range s.positions {
		if s.positions[i] != o.positions[i] {
			return false
		}
	}
	return true
}

// Union returns the positions of both sets over s's domain.
func (s Set) Union(o Set) Set {
	out := s
	for _, p := range o.positions {
		out = out.with(p)
	}
	if out.domain == nil {
		out.domain = o.domain
	}
	return out
}

// Word returns the positions of generation g shifted down to 0..31.
func (s Set) Word(g int) Set {
	lo, hi := g*GenerationWidth, (g+1)*GenerationWidth
	out := Set{domain: s.domain}
	for _, p := range s.positions {
		if p >= lo && p < hi {
			out.positions = append(out.positions, p-lo)
		}
	}
	return out
}

// Names resolves the set against its domain. Positions the domain does not
// name come out as "UNKNOWN(n)".
//
// Postcondition: len(result) == s.Len().
func (s Set) Names() []string {
	out := make([]string, 0, len(s.positions))
	for _, p := range s.positions {
		out = append(out, s.domain.Name(p))
	}
	return out
}

// Parse inverts Names.
func Parse(names []string, domain tables.Table) (Set, error) {
	s := Set{domain: domain}
	for _, n := range names {
		p, ok := domain.Index(n)
		if !ok {
			return Set{}, fmt.Errorf("flags: unknown flag name %q", n)
		}
		s = s.with(p)
	}
	return s, nil
}

// IsInteger reports whether raw is an optionally negative run of decimal digits.
// It is the single test that selects integer mode over letter mode.
func IsInteger(raw string) bool {
	digits := strings.TrimPrefix(raw, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// Decode parses a flag field and places its bits at bitOffset within domain.
// Integer mode accepts any value representable in 32 bits, signed or unsigned;
// "0" and "" decode to the empty set.
func Decode(raw string, domain tables.Table, bitOffset int) (Set, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return Set{domain: domain}, nil
	}
	if IsInteger(raw) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < math.MinInt32 || n > math.MaxUint32 {
			return Set{}, fmt.Errorf("flags: integer %q does not fit in 32 bits", raw)
		}
		return FromMask(uint64(uint32(n)), domain, bitOffset), nil
	}
	s := Set{domain: domain}
	for _, ch := range raw {
		var bit int
		switch {
		case ch >= 'a' && ch <= 'z':
			bit = int(ch - 'a')
		case ch >= 'A' && ch <= 'Z':
			bit = int(ch-'A') + 26
		default:
			return Set{}, fmt.Errorf("flags: invalid flag character %q in %q", ch, raw)
		}
		s = s.with(bit + bitOffset)
	}
	return s, nil
}

// FromMask places each set bit of mask at bitOffset within domain.
func FromMask(mask uint64, domain tables.Table, bitOffset int) Set {
	s := Set{domain: domain}
	for bit := 0; bit < 64; bit++ {
		if mask&(1<<uint(bit)) != 0 {
			s.positions = append(s.positions, bit+bitOffset)
		}
	}
	return s
}

// Encode renders the set in compact letter form. The empty set encodes as "0".
//
// Precondition: every position is <= MaxLetterBit.
func Encode(s Set) (string, error) {
	if s.IsEmpty() {
		return "0", nil
	}
	var b strings.Builder
	for _, p := range s.positions {
		switch {
		case p < 26:
			b.WriteByte(byte('a' + p))
		case p <= MaxLetterBit:
			b.WriteByte(byte('A' + p - 26))
		default:
			return "", fmt.Errorf("flags: position %d has no letter form", p)
		}
	}
	return b.String(), nil
}

// EncodeInt renders the set as a signed 32-bit decimal. Position 31 is the sign bit.
//
// Precondition: every position is < 32.
func EncodeInt(s Set) (string, error) {
	var mask uint32
	for _, p := range s.positions {
		if p >= GenerationWidth {
			return "", fmt.Errorf("flags: position %d has no 32-bit integer form", p)
		}
		mask |= 1 << uint(p)
	}
	return strconv.FormatInt(int64(int32(mask)), 10), nil
}

// Package tables holds the fixed name tables that give meaning to the numbers
// stored in legacy world and player files.
package tables

import (
	"fmt"
	"strings"
)

// Table maps a position (a bit index or an enumeration value) to its symbolic name.
type Table []string

// Name returns the symbolic name at position n.
//
// Postcondition: positions outside the table yield "UNKNOWN(n)" rather than an error,
// so values the table does not know about are preserved.
func (t Table) Name(n int) string {
	if n >= 0 && n < len(t) {
		return t[n]
	}
	return fmt.Sprintf("UNKNOWN(%d)", n)
}

// Index returns the position of name, matched case-insensitively.
// It also accepts the "UNKNOWN(n)" form produced by Name.
//
// Postcondition: ok is false when name resolves to no position.
func (t Table) Index(name string) (int, bool) {
	for i, v := range t {
		if strings.EqualFold(v, name) {
			return i, true
		}
	}
	var n int
	if _, err := fmt.Sscanf(name, "UNKNOWN(%d)", &n); err == nil && n >= 0 {
		return n, true
	}
	return 0, false
}

// LeadingName returns the first position whose name begins s, ignoring case,
// together with the length of the matched name.
func (t Table) LeadingName(s string) (int, int, bool) {
	for i, v := range t {
		if v != "" && len(s) >= len(v) && strings.EqualFold(s[:len(v)], v) {
			return i, len(v), true
		}
	}
	return 0, 0, false
}

// EnumName is like Name but renders misses as "unknown_<kind>_<n>" for
// normalized output documents.
func (t Table) EnumName(kind string, n int) string {
	if n >= 0 && n < len(t) {
		return t[n]
	}
	return fmt.Sprintf("unknown_%s_%d", kind, n)
}

// SkillName resolves a skill, spell or chant number.
func SkillName(n int) string {
	if name, ok := Skills[n]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", n)
}

package importer

import "strings"

// NameToID converts a display name, such as a player name taken from a save
// file name, to the snake_case key its output document is stored under.
//
// Postcondition: result is lowercase, contains only [a-z0-9_], has no leading
// or trailing underscore, and is idempotent (NameToID(NameToID(s)) == NameToID(s)).
func NameToID(name string) string {
	s := strings.Join(strings.Fields(strings.ToLower(name)), "_")
	var b strings.Builder
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "_")
}

package importer_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/cory-johannsen/mudconvert/internal/importer"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNameToID_Lowercase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringOf(rapid.RuneFrom(nil, unicode.Letter, unicode.Digit)).Draw(t, "name")
		id := importer.NameToID(name)
		for _, r := range id {
			assert.True(t, r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'),
				"unexpected char %q in id %q", r, id)
		}
	})
}

func TestNameToID_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringOf(rapid.RuneFrom(nil, unicode.Letter, unicode.Digit)).Draw(t, "name")
		id := importer.NameToID(name)
		assert.Equal(t, id, importer.NameToID(id))
	})
}

func TestNameToID_NoSpacesOrApostrophes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringOf(rapid.RuneFrom(nil, unicode.Letter, unicode.Space)).Draw(t, "name")
		id := importer.NameToID(name)
		assert.NotContains(t, id, " ")
		assert.NotContains(t, id, "'")
	})
}

func TestNameToID_NoEdgeUnderscores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringOf(rapid.RuneFrom([]rune{'_', ' ', 'a', 'Z', '7', '\''})).Draw(t, "name")
		id := importer.NameToID(name)
		assert.False(t, strings.HasPrefix(id, "_") || strings.HasSuffix(id, "_"), "id %q", id)
	})
}

func TestNameToID_KnownValues(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Aldric", "aldric"},
		{"Zed  Quill", "zed_quill"},
		{"O'Brien", "obrien"},
		{" _Trailing_ ", "trailing"},
		{"Builder 23", "builder_23"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, importer.NameToID(tc.input))
		})
	}
}

package playerfile_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/mudconvert/internal/importer"
	"github.com/cory-johannsen/mudconvert/internal/importer/playerfile"
	"github.com/cory-johannsen/mudconvert/internal/importer/schema"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/player"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
	"github.com/cory-johannsen/mudconvert/internal/legacy/values"
)

const aldricFile = `name: Aldric
password: $1$abcdef
sex: 1
level: 30
birthtime: 946684800
host: 010.000.000.001
hitpoints: 120/150
cash: 1 2 3 4
strength: 72
description:
A tall warrior.
~
`

const aldricObjects = `1
id: 3020
name: sword long
shortdesc: a long sword
type: 5
values:
0 2 6 3 0 0 0
~
location: 16
~~
id: 3032
name: bag
shortdesc: a bag
type: 15
values:
20 1 -1 0 0 0 0
~
location: 127
~~
id: 3033
name: pouch
type: 15
values:
5 0 -1 0 0 0 0
~
location: -1
~~
id: 3010
name: bread
type: 19
values:
24 0 0 0 0 0 0
~
location: -2
~~
id: 3011
name: apple
type: 19
location: -1
~~
`

func write(t *testing.T, path, s string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(s), 0644))
}

func playerTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write(t, filepath.Join(root, "A-E", "aldric.plr"), aldricFile)
	write(t, filepath.Join(root, "A-E", "aldric.objs"), aldricObjects)
	write(t, filepath.Join(root, "U-Z", "Zed Quill.plr"), "name: Zed Quill\nlevel: 3\n")
	write(t, filepath.Join(root, "U-Z", "notes.txt"), "ignored")
	return root
}

func convert(t *testing.T, src *playerfile.Source, root, key string) (playerfile.Document, *diag.Report) {
	t.Helper()
	units, err := src.Discover(root)
	require.NoError(t, err)
	for _, u := range units {
		if u.Key != key {
			continue
		}
		doc, err := src.Convert(context.Background(), u)
		require.NoError(t, err)
		body, ok := doc.Body.(playerfile.Document)
		require.True(t, ok)
		return body, doc.Report
	}
	t.Fatalf("no unit %q", key)
	return playerfile.Document{}, nil
}

type dropObjects map[int]bool

func (d dropObjects) Keep(kind string, id int, _ string) (bool, error) {
	return kind != "object" || !d[id], nil
}

// callLog records the ids a filter is asked about, in order.
type callLog struct{ ids []int }

func (c *callLog) Keep(_ string, id int, _ string) (bool, error) {
	c.ids = append(c.ids, id)
	return true, nil
}

type failingFilter struct{}

func (failingFilter) Keep(string, int, string) (bool, error) { return false, errors.New("script error") }

func TestDiscover_PairsObjectFiles(t *testing.T) {
	units, err := playerfile.NewSource(playerfile.Options{}).Discover(playerTree(t))
	require.NoError(t, err)
	require.Len(t, units, 2)

	assert.Equal(t, "aldric", units[0].Key)
	assert.Equal(t, importer.KindPlayer, units[0].Kind)
	require.Len(t, units[0].Files, 2)
	assert.Equal(t, ".plr", filepath.Ext(units[0].Files[0]))
	assert.Equal(t, ".objs", filepath.Ext(units[0].Files[1]))

	assert.Equal(t, "zed_quill", units[1].Key)
	assert.Len(t, units[1].Files, 1)
}

func TestDiscover_DuplicateKeys(t *testing.T) {
	root := playerTree(t)
	write(t, filepath.Join(root, "old", "Aldric.plr"), aldricFile)
	_, err := playerfile.NewSource(playerfile.Options{}).Discover(root)
	assert.Error(t, err)
}

func TestDiscover_EmptyOrMissing(t *testing.T) {
	_, err := playerfile.NewSource(playerfile.Options{}).Discover(t.TempDir())
	assert.Error(t, err)
	_, err = playerfile.NewSource(playerfile.Options{}).Discover("/nonexistent/players")
	assert.Error(t, err)
}

func TestConvert_PlayerDocument(t *testing.T) {
	doc, rep := convert(t, playerfile.NewSource(playerfile.Options{}), playerTree(t), "aldric")
	assert.Empty(t, rep.Fatals)
	assert.Empty(t, rep.Warnings)
	assert.Equal(t, 6, rep.Records)

	assert.Equal(t, "Aldric", doc.Player["name"])
	assert.Equal(t, "10.0.0.1", doc.Player["host"])
	assert.Equal(t, 30, doc.Player["level"])

	wielded, ok := doc.Equipment["wield"]
	require.True(t, ok)
	w, ok := wielded["values"].(values.Weapon)
	require.True(t, ok)
	assert.InDelta(t, 10.5, w.Average, 1e-9)

	require.Len(t, doc.Inventory, 1)
	contents := doc.Inventory[0]["contains"].([]player.Record)
	require.Len(t, contents, 2)
	assert.Equal(t, 3033, contents[0]["id"])
	assert.Equal(t, 3011, contents[1]["id"])
}

func TestConvert_NoObjectFile(t *testing.T) {
	doc, rep := convert(t, playerfile.NewSource(playerfile.Options{}), playerTree(t), "zed_quill")
	assert.Empty(t, rep.Fatals)
	assert.Empty(t, doc.Inventory)
	assert.NotNil(t, doc.Equipment)
}

func TestConvert_NameMismatchWarns(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "bob.plr"), "name: Robert\n")
	_, rep := convert(t, playerfile.NewSource(playerfile.Options{}), root, "bob")
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, diag.Integrity, rep.Warnings[0].Kind)
}

func TestConvert_UnknownKeyFailsTheUnit(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "bob.plr"), "name: Bob\nfavouritecolour: blue\n")
	src := playerfile.NewSource(playerfile.Options{})
	units, err := src.Discover(root)
	require.NoError(t, err)

	_, err = src.Convert(context.Background(), units[0])
	var tagErr *diag.UnknownTagError
	require.True(t, errors.As(err, &tagErr))
	assert.Equal(t, "favouritecolour", tagErr.Tag)
}

func TestConvert_BrokenObjectFileKeepsPlayer(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "bob.plr"), "name: Bob\n")
	write(t, filepath.Join(root, "bob.objs"), "1\nid: 1\nlocation: -1\n~~\n")
	doc, rep := convert(t, playerfile.NewSource(playerfile.Options{}), root, "bob")
	require.Len(t, rep.Fatals, 1)
	assert.Equal(t, "Bob", doc.Player["name"])
	assert.Empty(t, doc.Inventory)
}

func TestConvert_FilterDropsContainerWithContents(t *testing.T) {
	src := playerfile.NewSource(playerfile.Options{Filter: dropObjects{3033: true, 3020: true}})
	doc, _ := convert(t, src, playerTree(t), "aldric")

	assert.Empty(t, doc.Equipment)
	require.Len(t, doc.Inventory, 1)
	contents := doc.Inventory[0]["contains"].([]player.Record)
	require.Len(t, contents, 1)
	assert.Equal(t, 3011, contents[0]["id"])
}

func TestConvert_EquipmentFilteredInSlotOrder(t *testing.T) {
	locations := []int{17, 5, 16, 1, 12, 3, 9}
	var objs strings.Builder
	objs.WriteString("1\n")
	for _, loc := range locations {
		fmt.Fprintf(&objs, "id: %d\nname: item\nlocation: %d\n~~\n", 1000+loc, loc)
	}
	root := t.TempDir()
	write(t, filepath.Join(root, "bob.plr"), "name: Bob\n")
	write(t, filepath.Join(root, "bob.objs"), objs.String())

	bySlot := map[string]int{}
	for _, loc := range locations {
		bySlot[tables.WearLocations[loc]] = 1000 + loc
	}
	var want []int
	for _, slot := range slices.Sorted(maps.Keys(bySlot)) {
		want = append(want, bySlot[slot])
	}

	for range 5 {
		calls := &callLog{}
		doc, rep := convert(t, playerfile.NewSource(playerfile.Options{Filter: calls}), root, "bob")
		require.Empty(t, rep.Fatals)
		require.Len(t, doc.Equipment, len(locations))
		assert.Equal(t, want, calls.ids)
	}
}

func TestConvert_FilterErrorIsFatal(t *testing.T) {
	src := playerfile.NewSource(playerfile.Options{Filter: failingFilter{}})
	doc, rep := convert(t, src, playerTree(t), "aldric")
	require.Len(t, rep.Fatals, 1)
	assert.Contains(t, rep.Fatals[0].Error(), "script error")
	assert.Empty(t, doc.Inventory)
}

func TestConvert_Latin1(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "bob.plr"), "name: Bob\ntitle: the Caf\xe9 owner\n")
	doc, _ := convert(t, playerfile.NewSource(playerfile.Options{Encoding: importer.EncodingLatin1}), root, "bob")
	assert.Equal(t, "the Café owner", doc.Player["title"])
}

func TestRun_ValidatedAndRepeatable(t *testing.T) {
	root := playerTree(t)
	v, err := schema.New()
	require.NoError(t, err)

	run := func(out string) map[string][]byte {
		sink, err := importer.NewFileSink(out, false)
		require.NoError(t, err)
		imp := importer.New(playerfile.NewSource(playerfile.Options{}), sink, importer.WithValidator(v), importer.WithWorkers(2))
		res, err := imp.Run(context.Background(), root)
		require.NoError(t, err)
		require.NoError(t, sink.Close())
		require.True(t, res.OK())
		assert.Equal(t, 2, res.Written)

		files := map[string][]byte{}
		for _, key := range []string{"aldric", "zed_quill"} {
			data, err := os.ReadFile(sink.Path(importer.KindPlayer, key, importer.FormatJSON))
			require.NoError(t, err)
			files[key] = data
		}
		return files
	}

	first := run(t.TempDir())
	second := run(t.TempDir())
	assert.Equal(t, first, second)

	var decoded struct {
		Player    map[string]any            `json:"player"`
		Equipment map[string]map[string]any `json:"equipment"`
	}
	require.NoError(t, json.Unmarshal(first["aldric"], &decoded))
	assert.Equal(t, "2000-01-01T00:00:00Z", decoded.Player["birth_time"])
	assert.Contains(t, decoded.Equipment, "wield")
}

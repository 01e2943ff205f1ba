package scripting_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/mudconvert/internal/importer"
	"github.com/cory-johannsen/mudconvert/internal/scripting"
	"github.com/cory-johannsen/mudconvert/internal/storage/manifest"
)

const (
	keepAll  = `function keep_record() return true end`
	keepNone = `function keep_record() return false end`
)

func digestOf(t *testing.T, dir string) string {
	t.Helper()
	f, err := scripting.LoadFilter(dir, 0, zap.NewNop())
	require.NoError(t, err)
	defer f.Close()
	return f.Digest()
}

func TestFilter_DigestTracksScriptContents(t *testing.T) {
	base := digestOf(t, scriptDir(t, map[string]string{"f.lua": keepAll}))
	assert.Len(t, base, 64)

	assert.Equal(t, base, digestOf(t, scriptDir(t, map[string]string{"f.lua": keepAll})),
		"identical scripts in another directory")
	assert.NotEqual(t, base, digestOf(t, scriptDir(t, map[string]string{"f.lua": keepNone})))
	assert.NotEqual(t, base, digestOf(t, scriptDir(t, map[string]string{"g.lua": keepAll})))
	assert.NotEqual(t, base, digestOf(t, scriptDir(t, map[string]string{
		"f.lua":     keepAll,
		"extra.lua": `-- helper`,
	})))
}

// roomSource yields one zone whose single room passes through the filter.
type roomSource struct {
	file   string
	filter importer.Filter
}

func (s roomSource) Discover(string) ([]importer.Unit, error) {
	return []importer.Unit{{Kind: importer.KindZone, Key: "30", Files: []string{s.file}}}, nil
}

func (s roomSource) Convert(_ context.Context, u importer.Unit) (importer.Document, error) {
	ok, err := s.filter.Keep("room", 3001, "The Temple")
	if err != nil {
		return importer.Document{}, err
	}
	rooms := []string{}
	if ok {
		rooms = append(rooms, "The Temple")
	}
	return importer.Document{Kind: u.Kind, Key: u.Key, Body: map[string][]string{"rooms": rooms}}, nil
}

func TestFilter_EditedScriptReconvertsUnchangedInput(t *testing.T) {
	work := t.TempDir()
	input := filepath.Join(work, "30.wld")
	require.NoError(t, os.WriteFile(input, []byte("#3001\nThe Temple~\n$~\n"), 0644))
	scripts := filepath.Join(work, "scripts")
	require.NoError(t, os.MkdirAll(scripts, 0755))
	script := filepath.Join(scripts, "filter.lua")

	m, err := manifest.Open(filepath.Join(work, "manifest.db"))
	require.NoError(t, err)
	defer m.Close()
	sink, err := importer.NewFileSink(filepath.Join(work, "out"), false)
	require.NoError(t, err)
	defer sink.Close()

	run := func(src string) importer.Result {
		t.Helper()
		require.NoError(t, os.WriteFile(script, []byte(src), 0644))
		f, err := scripting.LoadFilter(scripts, 0, zap.NewNop())
		require.NoError(t, err)
		defer f.Close()
		imp := importer.New(roomSource{file: input, filter: f}, sink,
			importer.WithManifest(m, "legacy|"+f.Digest()))
		res, err := imp.Run(context.Background(), work)
		require.NoError(t, err)
		return res
	}
	output := func() string {
		t.Helper()
		b, err := os.ReadFile(sink.Path(importer.KindZone, "30", importer.FormatJSON))
		require.NoError(t, err)
		return string(b)
	}

	res := run(keepAll)
	assert.Equal(t, 1, res.Written)
	assert.Contains(t, output(), "The Temple")

	res = run(keepAll)
	assert.Equal(t, 1, res.Skipped, "same input and same script")

	res = run(keepNone)
	assert.Equal(t, 1, res.Written, "an edited script must re-convert the unit")
	assert.Zero(t, res.Skipped)
	assert.NotContains(t, output(), "The Temple")
}

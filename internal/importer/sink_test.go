package importer_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/mudconvert/internal/importer"
)

func encoded(t *testing.T, f importer.Format) importer.Encoded {
	t.Helper()
	e, err := importer.Encode(importer.Document{Kind: importer.KindZone, Key: "30", Body: body{Name: "Midgaard"}}, f, uuid.New())
	require.NoError(t, err)
	return e
}

func TestEncode_JSON(t *testing.T) {
	e := encoded(t, importer.FormatJSON)
	assert.Equal(t, "{\n  \"name\": \"Midgaard\"\n}\n", string(e.Data))
	assert.Equal(t, e.Data, e.JSON)
	assert.Len(t, e.Digest, 64)
}

func TestEncode_YAMLKeepsCanonicalJSON(t *testing.T) {
	e := encoded(t, importer.FormatYAML)
	assert.Equal(t, "name: Midgaard\n", string(e.Data))
	assert.True(t, strings.HasPrefix(string(e.JSON), "{"))
	assert.NotEqual(t, encoded(t, importer.FormatJSON).Digest, e.Digest)
}

func TestEncode_UnencodableBody(t *testing.T) {
	_, err := importer.Encode(importer.Document{Kind: "zone", Key: "1", Body: make(chan int)}, importer.FormatJSON, uuid.New())
	assert.Error(t, err)
}

func TestParseFormatAndEncoding(t *testing.T) {
	f, err := importer.ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, importer.FormatYAML, f)
	_, err = importer.ParseFormat("xml")
	assert.Error(t, err)

	e, err := importer.ParseEncoding("")
	require.NoError(t, err)
	assert.Equal(t, importer.EncodingASCII, e)
	_, err = importer.ParseEncoding("utf-16")
	assert.Error(t, err)
}

func TestFileSink_WritesUnderKindDirectory(t *testing.T) {
	dir := t.TempDir()
	sink, err := importer.NewFileSink(dir, false)
	require.NoError(t, err)
	defer sink.Close()

	e := encoded(t, importer.FormatJSON)
	require.NoError(t, sink.Write(context.Background(), e))

	path := sink.Path(importer.KindZone, "30", importer.FormatJSON)
	assert.Equal(t, filepath.Join(dir, "zones", "30.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, e.Data, data)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileSink_Compressed(t *testing.T) {
	sink, err := importer.NewFileSink(t.TempDir(), true)
	require.NoError(t, err)
	defer sink.Close()

	e := encoded(t, importer.FormatYAML)
	require.NoError(t, sink.Write(context.Background(), e))

	path := sink.Path(importer.KindZone, "30", importer.FormatYAML)
	assert.True(t, strings.HasSuffix(path, "30.yaml.zst"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	plain, err := dec.DecodeAll(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, e.Data, plain)
}

func TestFileSink_CancelledContext(t *testing.T) {
	sink, err := importer.NewFileSink(t.TempDir(), false)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sink.Write(ctx, encoded(t, importer.FormatJSON)), context.Canceled)
}

func TestInputDigest(t *testing.T) {
	root := inputTree(t, "a")
	u := importer.Unit{Kind: importer.KindZone, Key: "a", Files: []string{filepath.Join(root, "a")}}

	d1, err := importer.InputDigest(u, "json")
	require.NoError(t, err)
	d2, err := importer.InputDigest(u, "json")
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	d3, err := importer.InputDigest(u, "yaml")
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)

	u.Files = append(u.Files, filepath.Join(root, "missing"))
	_, err = importer.InputDigest(u, "json")
	assert.Error(t, err)
}

package manifest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/mudconvert/internal/importer"
	"github.com/cory-johannsen/mudconvert/internal/storage/manifest"
)

func openManifest(t *testing.T) (*manifest.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "manifest.db")
	s, err := manifest.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := manifest.Open("")
	assert.Error(t, err)
}

func TestStore_LookupMissing(t *testing.T) {
	s, _ := openManifest(t)
	_, ok, err := s.Lookup(context.Background(), importer.KindZone, "30")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_RecordSurvivesReopen(t *testing.T) {
	s, path := openManifest(t)
	ctx := context.Background()
	entry := importer.ManifestEntry{
		InputDigest:  "in",
		OutputDigest: "out",
		RunID:        uuid.New(),
		UpdatedAt:    time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Record(ctx, importer.KindZone, "30", entry))
	require.NoError(t, s.Close())

	reopened, err := manifest.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Lookup(ctx, importer.KindZone, "30")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, got)

	_, ok, err = reopened.Lookup(ctx, importer.KindPlayer, "30")
	require.NoError(t, err)
	assert.False(t, ok, "kinds are separate buckets")
}

func TestStore_Forget(t *testing.T) {
	s, _ := openManifest(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, importer.KindZone, "30", importer.ManifestEntry{InputDigest: "a"}))
	require.NoError(t, s.Record(ctx, importer.KindPlayer, "bob", importer.ManifestEntry{InputDigest: "b"}))

	require.NoError(t, s.Forget(importer.KindZone))
	n, err := s.Len(importer.KindZone)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = s.Len(importer.KindPlayer)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, s.Forget("never-recorded"))
}

func TestStore_CancelledContext(t *testing.T) {
	s, _ := openManifest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Record(ctx, importer.KindZone, "1", importer.ManifestEntry{}), context.Canceled)
	_, _, err := s.Lookup(ctx, importer.KindZone, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_DrivesImporterSkips(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "30.wld"), []byte("$~\n"), 0644))
	s, _ := openManifest(t)
	ctx := context.Background()

	u := importer.Unit{Kind: importer.KindZone, Key: "30", Files: []string{filepath.Join(root, "30.wld")}}
	d, err := importer.InputDigest(u, "json")
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, u.Kind, u.Key, importer.ManifestEntry{InputDigest: d}))

	got, ok, err := s.Lookup(ctx, u.Kind, u.Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, d, got.InputDigest)
}

// Property: the last Record for a key is what Lookup returns.
func TestStore_LastRecordWins(t *testing.T) {
	s, _ := openManifest(t)
	ctx := context.Background()
	rapid.Check(t, func(rt *rapid.T) {
		key := rapid.StringMatching(`[a-z0-9_]{1,12}`).Draw(rt, "key")
		digests := rapid.SliceOfN(rapid.StringMatching(`[0-9a-f]{8}`), 1, 5).Draw(rt, "digests")
		for _, d := range digests {
			if err := s.Record(ctx, importer.KindPlayer, key, importer.ManifestEntry{InputDigest: d}); err != nil {
				rt.Fatal(err)
			}
		}
		got, ok, err := s.Lookup(ctx, importer.KindPlayer, key)
		if err != nil || !ok {
			rt.Fatalf("lookup %q: ok=%v err=%v", key, ok, err)
		}
		assert.Equal(rt, digests[len(digests)-1], got.InputDigest)
	})
}

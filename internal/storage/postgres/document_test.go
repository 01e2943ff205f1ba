package postgres_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/mudconvert/internal/importer"
	"github.com/cory-johannsen/mudconvert/internal/storage/postgres"
	"github.com/cory-johannsen/mudconvert/internal/testutil"
)

func encodedZone(t *testing.T, key, name string, runID uuid.UUID) importer.Encoded {
	t.Helper()
	e, err := importer.Encode(importer.Document{
		Kind: importer.KindZone,
		Key:  key,
		Body: map[string]any{"zone": map[string]any{"name": name}},
	}, importer.FormatYAML, runID)
	require.NoError(t, err)
	return e
}

func TestDocumentRepository_WriteAndGet(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()
	require.NoError(t, postgres.CheckSchema(ctx, pool))
	repo := postgres.NewDocumentRepository(pool)

	run := uuid.New()
	e := encodedZone(t, "30", "Midgaard", run)
	require.NoError(t, repo.Write(ctx, e))

	got, err := repo.Get(ctx, importer.KindZone, "30")
	require.NoError(t, err)
	assert.Equal(t, run, got.RunID)
	assert.Equal(t, "yaml", got.Format)
	assert.Equal(t, e.Digest, got.Digest)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(got.Body, &body))
	assert.Equal(t, "Midgaard", body["zone"]["name"])
}

func TestDocumentRepository_WriteUpserts(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()
	repo := postgres.NewDocumentRepository(pool)

	first, second := uuid.New(), uuid.New()
	require.NoError(t, repo.Write(ctx, encodedZone(t, "30", "Midgaard", first)))
	require.NoError(t, repo.Write(ctx, encodedZone(t, "31", "Shire", first)))
	require.NoError(t, repo.Write(ctx, encodedZone(t, "30", "New Midgaard", second)))

	keys, err := repo.Keys(ctx, importer.KindZone)
	require.NoError(t, err)
	assert.Equal(t, []string{"30", "31"}, keys)

	n, err := repo.CountByRun(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := repo.Get(ctx, importer.KindZone, "30")
	require.NoError(t, err)
	assert.Equal(t, second, got.RunID)
}

func TestDocumentRepository_GetNotFound(t *testing.T) {
	repo := postgres.NewDocumentRepository(testutil.NewPool(t))
	_, err := repo.Get(context.Background(), importer.KindPlayer, "nobody")
	assert.ErrorIs(t, err, postgres.ErrDocumentNotFound)
}

func TestCheckSchema_Missing(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	err := postgres.CheckSchema(context.Background(), pc.Pool)
	assert.ErrorIs(t, err, postgres.ErrSchemaMissing)
}

func TestCheckSchema_AfterMigrateAndRollback(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)
	ctx := context.Background()

	pc.Migrate(t)
	require.NoError(t, postgres.CheckSchema(ctx, pc.Pool))

	pc.Rollback(t)
	assert.ErrorIs(t, postgres.CheckSchema(ctx, pc.Pool), postgres.ErrSchemaMissing)
}

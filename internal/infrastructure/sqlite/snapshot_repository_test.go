package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite"
)

func TestSnapshotRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inventario.db")

	repo, err := sqlite.Open(ctx, path, "inventory_data")
	require.NoError(t, err)

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, repo.Save(ctx, []byte(`{"version":1}`)))
	require.NoError(t, repo.Save(ctx, []byte(`{"version":2}`)))
	require.NoError(t, repo.Close())

	// reabrir: el snapshot sobrevive
	repo, err = sqlite.Open(ctx, path, "inventory_data")
	require.NoError(t, err)
	defer repo.Close()

	data, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2}`, string(data))
}

func TestSnapshotRepository_ClavesIndependientes(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inventario.db")

	a, err := sqlite.Open(ctx, path, "a")
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx, []byte(`{"k":"a"}`)))
	require.NoError(t, a.Close())

	b, err := sqlite.Open(ctx, path, "b")
	require.NoError(t, err)
	defer b.Close()
	data, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
}

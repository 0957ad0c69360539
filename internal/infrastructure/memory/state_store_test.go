package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/snapshot"
)

// failingRepo ranura cuyo Save siempre falla.
type failingRepo struct{ err error }

func (r failingRepo) Load(context.Context) ([]byte, error) { return nil, nil }
func (r failingRepo) Save(context.Context, []byte) error   { return r.err }

func addArticle(code string) func(*entity.InventoryState) error {
	return func(s *entity.InventoryState) error {
		s.Articles = append(s.Articles, entity.Article{ID: "id-" + code, Code: code, Units: 1, Price: decimal.NewFromInt(10)})
		return nil
	}
}

func TestLoad_RanuraVacia(t *testing.T) {
	store := memory.NewStateStore(snapshot.NewMemoryRepository(nil), nil)

	require.NoError(t, store.Load(context.Background()))

	state := store.Snapshot()
	assert.NotNil(t, state.Articles)
	assert.Empty(t, state.Articles)
	assert.Zero(t, state.Version)
}

func TestLoad_SnapshotCorruptoIniciaVacio(t *testing.T) {
	store := memory.NewStateStore(snapshot.NewMemoryRepository([]byte(`{"articles": [`)), nil)

	require.NoError(t, store.Load(context.Background()))

	assert.Empty(t, store.Snapshot().Articles)
}

func TestRun_PersisteYRecarga(t *testing.T) {
	ctx := context.Background()
	repo := snapshot.NewMemoryRepository(nil)
	store := memory.NewStateStore(repo, nil)
	require.NoError(t, store.Load(ctx))

	require.NoError(t, store.Run(ctx, addArticle("001")))
	require.NoError(t, store.Run(ctx, addArticle("002")))
	assert.Equal(t, 2, repo.Saves())

	reloaded := memory.NewStateStore(repo, nil)
	require.NoError(t, reloaded.Load(ctx))
	state := reloaded.Snapshot()
	require.Len(t, state.Articles, 2)
	assert.Equal(t, int64(2), state.Version)
	assert.True(t, decimal.NewFromInt(10).Equal(state.Articles[1].Price))
}

func TestRun_ErrorDescartaCambios(t *testing.T) {
	ctx := context.Background()
	repo := snapshot.NewMemoryRepository(nil)
	store := memory.NewStateStore(repo, nil)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Run(ctx, addArticle("001")))
	boom := errors.New("validación")

	err := store.Run(ctx, func(s *entity.InventoryState) error {
		s.Articles[0].Units = 99
		s.Articles = append(s.Articles, entity.Article{Code: "002"})
		return boom
	})

	assert.ErrorIs(t, err, boom)
	state := store.Snapshot()
	require.Len(t, state.Articles, 1)
	assert.Equal(t, 1, state.Articles[0].Units, "la copia de trabajo no comparte memoria con el estado vigente")
	assert.Equal(t, int64(1), state.Version)
	assert.Equal(t, 1, repo.Saves())
}

func TestRun_FalloAlGuardarNoCambiaEstado(t *testing.T) {
	ctx := context.Background()
	diskFull := errors.New("disco lleno")
	store := memory.NewStateStore(failingRepo{err: diskFull}, nil)
	require.NoError(t, store.Load(ctx))

	err := store.Run(ctx, addArticle("001"))

	assert.ErrorIs(t, err, diskFull)
	assert.Empty(t, store.Snapshot().Articles)
	assert.Zero(t, store.Snapshot().Version)
}

func TestRun_SnapshotPublicadoEsInmutable(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStateStore(snapshot.NewMemoryRepository(nil), nil)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Run(ctx, addArticle("001")))

	before := store.Snapshot()
	require.NoError(t, store.Run(ctx, func(s *entity.InventoryState) error {
		s.Articles[0].Units = 50
		return nil
	}))

	assert.Equal(t, 1, before.Articles[0].Units)
	assert.Equal(t, 50, store.Snapshot().Articles[0].Units)
}

func TestRun_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := memory.NewStateStore(snapshot.NewMemoryRepository(nil), nil)
	require.NoError(t, store.Load(ctx))
	cancel()

	err := store.Run(ctx, addArticle("001"))

	assert.ErrorIs(t, err, context.Canceled)
}

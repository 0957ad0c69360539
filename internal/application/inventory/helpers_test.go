package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/snapshot"
)

// fixedClock reloj determinista que avanza un segundo por llamada.
type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newClock() *fixedClock {
	return &fixedClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

// newStore store en memoria ya cargado, con una ranura vacía.
func newStore(t *testing.T) (*memory.StateStore, *snapshot.MemoryRepository) {
	t.Helper()
	repo := snapshot.NewMemoryRepository(nil)
	store := memory.NewStateStore(repo, nil)
	require.NoError(t, store.Load(context.Background()))
	return store, repo
}

func newArticles(t *testing.T) (*inventory.ArticleUseCase, *memory.StateStore) {
	t.Helper()
	store, _ := newStore(t)
	return inventory.NewArticleUseCase(store, newClock(), nil), store
}

func mustCreate(t *testing.T, uc *inventory.ArticleUseCase, code, name string, units int, price int64) *entity.Article {
	t.Helper()
	a, created, err := uc.Create(context.Background(), dto.CreateArticleRequest{
		Code:  code,
		Name:  name,
		Units: units,
		Price: decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	require.True(t, created)
	return a
}

func ptr[T any](v T) *T { return &v }

package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain"
)

func TestSection_CRUD(t *testing.T) {
	store, _ := newStore(t)
	uc := inventory.NewSectionUseCase(store, newClock(), nil)
	ctx := context.Background()

	sec, err := uc.Create(ctx, dto.CreateSectionRequest{Name: " Herramientas ", Description: "Manuales"})
	require.NoError(t, err)
	assert.Equal(t, "Herramientas", sec.Name)

	upd, err := uc.Update(ctx, sec.ID, dto.UpdateSectionRequest{Description: ptr("Eléctricas")})
	require.NoError(t, err)
	assert.Equal(t, "Herramientas", upd.Name)
	assert.Equal(t, "Eléctricas", upd.Description)

	got, err := uc.GetByID(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eléctricas", got.Description)
	assert.Len(t, uc.List(), 1)

	_, err = uc.Create(ctx, dto.CreateSectionRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, "nope", dto.UpdateSectionRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSection_DeleteLiberaArticulos(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	sections := inventory.NewSectionUseCase(store, newClock(), nil)
	articles := inventory.NewArticleUseCase(store, newClock(), nil)

	sec, err := sections.Create(ctx, dto.CreateSectionRequest{Name: "Temporal"})
	require.NoError(t, err)
	a, _, err := articles.Create(ctx, dto.CreateArticleRequest{Code: "1", Name: "A", SectionID: sec.ID})
	require.NoError(t, err)
	require.Len(t, articles.List(sec.ID), 1)

	require.NoError(t, sections.Delete(ctx, sec.ID))

	got, err := articles.GetByID(a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.SectionID)
	assert.Empty(t, sections.List())
	assert.ErrorIs(t, sections.Delete(ctx, sec.ID), domain.ErrNotFound)
}

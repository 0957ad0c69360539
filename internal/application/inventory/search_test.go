package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

func seedSearch(t *testing.T) (*inventory.SearchUseCase, *inventory.ArticleUseCase, string) {
	t.Helper()
	store, _ := newStore(t)
	ctx := context.Background()
	sections := inventory.NewSectionUseCase(store, newClock(), nil)
	articles := inventory.NewArticleUseCase(store, newClock(), nil)

	sec, err := sections.Create(ctx, dto.CreateSectionRequest{Name: "Redes"})
	require.NoError(t, err)
	_, _, err = articles.Create(ctx, dto.CreateArticleRequest{Code: "001", Name: "Cable UTP", Brand: "Genérica", SectionID: sec.ID})
	require.NoError(t, err)
	_, _, err = articles.Create(ctx, dto.CreateArticleRequest{Code: "002", Name: "Café molido", Brand: "Sello Rojo"})
	require.NoError(t, err)
	_, _, err = articles.Create(ctx, dto.CreateArticleRequest{Code: "003", Name: "Cable HDMI", Brand: "Sony", Reference: "HD-2M"})
	require.NoError(t, err)

	uc, err := inventory.NewSearchUseCase(store, 16)
	require.NoError(t, err)
	return uc, articles, sec.ID
}

func TestSearch_ConsultaVacia(t *testing.T) {
	uc, _, _ := seedSearch(t)

	assert.Empty(t, uc.Search("", ""))
	assert.Empty(t, uc.Search("   ", ""))
	assert.NotNil(t, uc.Search("", ""))
}

func TestSearch_Abreviatura(t *testing.T) {
	uc, _, _ := seedSearch(t)

	res := uc.Search("cb", "")

	require.Len(t, res, 2)
	assert.Equal(t, "Cable UTP", res[0].Name)
	assert.Equal(t, "Cable HDMI", res[1].Name)
}

func TestSearch_TodosLosTerminos(t *testing.T) {
	uc, _, _ := seedSearch(t)

	res := uc.Search("cable utp", "")
	require.Len(t, res, 1)
	assert.Equal(t, "001", res[0].Code)

	assert.Empty(t, uc.Search("cable cafe", ""))
}

func TestSearch_SinTildes(t *testing.T) {
	uc, _, _ := seedSearch(t)

	res := uc.Search("CAFE", "")

	require.Len(t, res, 1)
	assert.Equal(t, "002", res[0].Code)
}

func TestSearch_PorSeccion(t *testing.T) {
	uc, _, sectionID := seedSearch(t)

	res := uc.Search("cable", sectionID)

	require.Len(t, res, 1)
	assert.Equal(t, "001", res[0].Code)
}

func TestSearch_CacheSeInvalidaConCambios(t *testing.T) {
	uc, articles, _ := seedSearch(t)
	ctx := context.Background()

	require.Len(t, uc.Search("cable", ""), 2)
	require.Len(t, uc.Search("cable", ""), 2)
	assert.Equal(t, 1, uc.CacheLen())

	_, _, err := articles.Create(ctx, dto.CreateArticleRequest{Code: "004", Name: "Cable VGA"})
	require.NoError(t, err)

	assert.Len(t, uc.Search("cable", ""), 3)
	assert.Equal(t, 2, uc.CacheLen())
}

func TestSearch_ResultadoNoCompartido(t *testing.T) {
	uc, _, _ := seedSearch(t)

	first := uc.Search("cable", "")
	first[0].Name = "mutado"

	assert.Equal(t, "Cable UTP", uc.Search("cable", "")[0].Name)
}

func TestSearch_SinCache(t *testing.T) {
	store, _ := newStore(t)
	uc, err := inventory.NewSearchUseCase(store, 0)
	require.NoError(t, err)

	assert.Empty(t, uc.Search("x", ""))
	assert.Zero(t, uc.CacheLen())
}

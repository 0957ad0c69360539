package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/search"
)

func article(code, name, brand, ref string) *entity.Article {
	return &entity.Article{Code: code, Name: name, Brand: brand, Reference: ref}
}

func TestMatch_ConsultaVaciaNoCoincide(t *testing.T) {
	a := article("001", "Cable UTP", "Nexxt", "CAT6")
	assert.Nil(t, search.Terms("   "))
	assert.False(t, search.Match(a, search.Terms("")))
}

func TestMatch_AbreviaturaCorta(t *testing.T) {
	a := article("001", "Cable UTP", "Nexxt", "CAT6")
	assert.True(t, search.Match(a, search.Terms("cb")), "cb debe coincidir con cable")
	assert.True(t, search.Match(a, search.Terms("ut")))
	assert.False(t, search.Match(a, search.Terms("bc")), "la primera letra debe coincidir")
}

func TestMatch_TerminoLargoSinAbreviatura(t *testing.T) {
	a := article("001", "Cable UTP", "Nexxt", "CAT6")
	assert.False(t, search.Match(a, search.Terms("cble")), "más de 3 letras no usa abreviatura")
	assert.True(t, search.Match(a, search.Terms("nexx")))
}

func TestMatch_SubcadenaYMayusculas(t *testing.T) {
	a := article("A-77", "Interruptor doble", "Legrand", "")
	assert.True(t, search.Match(a, search.Terms("RRUPT")))
	assert.True(t, search.Match(a, search.Terms("a-77")))
}

func TestMatch_TodosLosTerminos(t *testing.T) {
	a := article("001", "Cable UTP", "Nexxt", "CAT6")
	assert.True(t, search.Match(a, search.Terms("cable nexxt")))
	assert.False(t, search.Match(a, search.Terms("cable legrand")), "AND entre términos")
}

func TestMatch_IgnoraTildes(t *testing.T) {
	a := article("002", "Café molido", "Sello Rojo", "")
	assert.True(t, search.Match(a, search.Terms("cafe")))
	assert.True(t, search.Match(a, search.Terms("CAFÉ")))
	assert.Equal(t, "cafe molido", search.Fold("Café Molido"))
}

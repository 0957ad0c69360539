package inventory

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/search"
)

// SearchUseCase búsqueda difusa de artículos, con caché LRU de resultados.
// La llave incluye la versión del estado: cualquier cambio confirmado invalida las entradas viejas.
type SearchUseCase struct {
	tx    ports.TxRunner
	cache *lru.Cache[string, []entity.Article]
}

// NewSearchUseCase construye el caso de uso. cacheSize <= 0 desactiva la caché.
func NewSearchUseCase(tx ports.TxRunner, cacheSize int) (*SearchUseCase, error) {
	uc := &SearchUseCase{tx: tx}
	if cacheSize > 0 {
		c, err := lru.New[string, []entity.Article](cacheSize)
		if err != nil {
			return nil, err
		}
		uc.cache = c
	}
	return uc, nil
}

// Search devuelve los artículos que cumplen todos los términos, en orden de inserción.
// Consulta en blanco → lista vacía. sectionID limita la búsqueda a esa sección.
func (uc *SearchUseCase) Search(query, sectionID string) []entity.Article {
	terms := search.Terms(query)
	if len(terms) == 0 {
		return []entity.Article{}
	}
	state := uc.tx.Snapshot()

	key := strconv.FormatInt(state.Version, 10) + "|" + sectionID + "|" + strings.Join(terms, " ")
	if uc.cache != nil {
		if hit, ok := uc.cache.Get(key); ok {
			return append([]entity.Article{}, hit...)
		}
	}

	out := []entity.Article{}
	for i := range state.Articles {
		a := &state.Articles[i]
		if sectionID != "" && !a.InSection(sectionID) {
			continue
		}
		if search.Match(a, terms) {
			out = append(out, *a)
		}
	}
	if uc.cache != nil {
		uc.cache.Add(key, append([]entity.Article{}, out...))
	}
	return out
}

// CacheLen entradas en caché (0 si está desactivada).
func (uc *SearchUseCase) CacheLen() int {
	if uc.cache == nil {
		return 0
	}
	return uc.cache.Len()
}

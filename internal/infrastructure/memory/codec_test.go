package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/memory"
)

// legacySnapshot forma del snapshot que guardaba la versión de navegador: precios numéricos,
// sin contadores de consecutivo y con la lista de artículos embebida en la sección.
const legacySnapshot = `{
  "articles": [
    {"id": "a1", "code": "001", "name": "Cable UTP", "brand": "Genérica", "units": 10, "price": 25000, "reference": "", "sectionId": "s1",
     "createdAt": "2024-03-01T09:00:00.000Z", "updatedAt": "2024-03-01T09:00:00.000Z"}
  ],
  "sections": [{"id": "s1", "name": "Redes", "description": "", "articles": [], "createdAt": "2024-03-01T09:00:00.000Z"}],
  "customers": [],
  "quotes": [
    {"id": "q1", "quoteNumber": "COT-000007", "items": [], "subtotal": 0, "iva": 0, "total": 0, "status": "active",
     "validUntil": "2024-03-16T09:00:00.000Z", "createdAt": "2024-03-01T09:00:00.000Z"}
  ],
  "invoices": [
    {"id": "i1", "invoiceNumber": "FAC-000001", "items": [], "subtotal": 0, "iva": 0, "total": 0, "status": "draft", "createdAt": "2024-03-01T09:00:00.000Z"},
    {"id": "i2", "invoiceNumber": "FAC-000002", "items": [], "subtotal": 0, "iva": 0, "total": 0, "status": "draft", "createdAt": "2024-03-01T09:00:00.000Z"}
  ]
}`

func TestDecode_SnapshotLegado(t *testing.T) {
	state, err := memory.Decode([]byte(legacySnapshot))
	require.NoError(t, err)
	memory.Migrate(state)

	require.Len(t, state.Articles, 1)
	assert.Equal(t, "25000", state.Articles[0].Price.String())
	assert.Equal(t, "s1", state.Articles[0].SectionID)
	assert.NotNil(t, state.RecentActivities)
	assert.Equal(t, 7, state.Sequences.Quote, "el mayor número emitido gana sobre el tamaño")
	assert.Equal(t, 2, state.Sequences.Invoice)
}

func TestMigrate_NoRetrocedeContadores(t *testing.T) {
	state := entity.NewInventoryState()
	state.Sequences = entity.Sequences{Quote: 12, Invoice: 40}

	memory.Migrate(state)

	assert.Equal(t, 12, state.Sequences.Quote)
	assert.Equal(t, 40, state.Sequences.Invoice)
}

func TestMigrate_RecortaHistorial(t *testing.T) {
	state := entity.NewInventoryState()
	for i := 0; i < 70; i++ {
		state.RecentActivities = append(state.RecentActivities, entity.RecentActivity{ID: "x"})
	}

	memory.Migrate(state)

	assert.Len(t, state.RecentActivities, entity.MaxRecentActivities)
}

func TestEncodeDecode_ColeccionesVaciasComoArreglo(t *testing.T) {
	data, err := memory.Encode(entity.NewInventoryState())
	require.NoError(t, err)

	assert.Contains(t, string(data), `"articles":[]`)
	assert.Contains(t, string(data), `"sequences":{"quote":0,"invoice":0}`)
}

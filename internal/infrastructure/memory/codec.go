package memory

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain/billing"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// Encode serializa el agregado completo (JSON).
func Encode(state *entity.InventoryState) ([]byte, error) {
	return json.Marshal(state)
}

// Decode interpreta un snapshot. No intenta recuperar campos sueltos de un JSON inválido.
func Decode(data []byte) (*entity.InventoryState, error) {
	var state entity.InventoryState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	return &state, nil
}

// Migrate normaliza snapshots antiguos: colecciones nil, historial sobre el tope y
// contadores de consecutivos ausentes (se toma el mayor entre el tamaño de la colección
// y el número más alto ya emitido).
func Migrate(state *entity.InventoryState) {
	if state.Articles == nil {
		state.Articles = []entity.Article{}
	}
	if state.Sections == nil {
		state.Sections = []entity.Section{}
	}
	if state.Customers == nil {
		state.Customers = []entity.Customer{}
	}
	if state.Quotes == nil {
		state.Quotes = []entity.Quote{}
	}
	if state.Invoices == nil {
		state.Invoices = []entity.Invoice{}
	}
	if state.RecentActivities == nil {
		state.RecentActivities = []entity.RecentActivity{}
	}
	if len(state.RecentActivities) > entity.MaxRecentActivities {
		state.RecentActivities = state.RecentActivities[:entity.MaxRecentActivities]
	}

	quoteSeq := len(state.Quotes)
	for _, q := range state.Quotes {
		if n, ok := billing.ParseNumber(billing.QuotePrefix, q.QuoteNumber); ok && n > quoteSeq {
			quoteSeq = n
		}
	}
	if quoteSeq > state.Sequences.Quote {
		state.Sequences.Quote = quoteSeq
	}

	invoiceSeq := len(state.Invoices)
	for _, inv := range state.Invoices {
		if n, ok := billing.ParseNumber(billing.InvoicePrefix, inv.InvoiceNumber); ok && n > invoiceSeq {
			invoiceSeq = n
		}
	}
	if invoiceSeq > state.Sequences.Invoice {
		state.Sequences.Invoice = invoiceSeq
	}
}

package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	domainbilling "github.com/jhoicas/inventario-local/internal/domain/billing"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// buildItems valida las líneas pedidas contra el estado y congela código, nombre y precio.
// La cantidad acumulada por artículo no puede superar las unidades disponibles.
func buildItems(state *entity.InventoryState, reqs []dto.DocumentItemRequest) ([]entity.InvoiceItem, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: el documento no tiene líneas", domain.ErrInvalidInput)
	}
	requested := make(map[string]int, len(reqs))
	items := make([]entity.InvoiceItem, 0, len(reqs))
	for _, r := range reqs {
		if r.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad debe ser mayor a cero", domain.ErrInvalidInput)
		}
		article := state.FindArticle(r.ArticleID)
		if article == nil {
			return nil, fmt.Errorf("artículo %s: %w", r.ArticleID, domain.ErrNotFound)
		}
		requested[article.ID] += r.Quantity
		if requested[article.ID] > article.Units {
			return nil, fmt.Errorf("%w: %s tiene %d unidades, se piden %d",
				domain.ErrInsufficientStock, article.Code, article.Units, requested[article.ID])
		}
		items = append(items, entity.NewInvoiceItem(article, r.Quantity))
	}
	return items, nil
}

// findCustomer copia del cliente; los documentos guardan el cliente como estaba al emitirse.
func findCustomer(state *entity.InventoryState, id string) (entity.Customer, error) {
	c := state.FindCustomer(id)
	if c == nil {
		return entity.Customer{}, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return *c, nil
}

// appendInvoice crea una factura en borrador con el siguiente consecutivo FAC.
func appendInvoice(state *entity.InventoryState, customer entity.Customer, items []entity.InvoiceItem, resolution string, now time.Time) entity.Invoice {
	state.Sequences.Invoice++
	totals := domainbilling.ComputeTotals(items)
	inv := entity.Invoice{
		ID:             uuid.New().String(),
		InvoiceNumber:  domainbilling.FormatNumber(domainbilling.InvoicePrefix, state.Sequences.Invoice),
		Customer:       customer,
		Items:          items,
		Subtotal:       totals.Subtotal,
		IVA:            totals.IVA,
		Total:          totals.Total,
		Status:         entity.InvoiceStatusDraft,
		CreatedAt:      now,
		ResolucionDIAN: resolution,
	}
	state.Invoices = append(state.Invoices, inv)
	return inv
}

func cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	out := *inv
	out.Items = append([]entity.InvoiceItem{}, inv.Items...)
	return &out
}

func cloneQuote(q *entity.Quote) *entity.Quote {
	out := *q
	out.Items = append([]entity.InvoiceItem{}, q.Items...)
	return &out
}

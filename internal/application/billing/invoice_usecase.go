package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// InvoiceUseCase facturas: creación en borrador, confirmación (descuenta inventario) y anulación.
type InvoiceUseCase struct {
	tx         ports.TxRunner
	stock      StockDeducter
	clock      ports.Clock
	resolution string
	log        *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso. resolution es la leyenda impresa en cada factura.
func NewInvoiceUseCase(tx ports.TxRunner, stock StockDeducter, clock ports.Clock, resolution string, log *logger.Logger) *InvoiceUseCase {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceUseCase{tx: tx, stock: stock, clock: clock, resolution: resolution, log: log.Component("invoices")}
}

// Create crea una factura en borrador. No toca el inventario hasta confirmarla.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		customer, err := findCustomer(state, in.CustomerID)
		if err != nil {
			return err
		}
		items, err := buildItems(state, in.Items)
		if err != nil {
			return err
		}
		inv = appendInvoice(state, customer, items, uc.resolution, uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("number", inv.InvoiceNumber).
		Str("total", inv.Total.String()).
		Msg("factura creada")
	return cloneInvoice(&inv), nil
}

// Confirm asienta una factura en borrador: descuenta cada línea del inventario (mínimo cero)
// y registra la actividad por artículo. Los artículos eliminados después de la venta se omiten.
// Confirmar dos veces devuelve ErrInvalidTransition sin tocar el stock.
func (uc *InvoiceUseCase) Confirm(ctx context.Context, id string) (*entity.Invoice, error) {
	var confirmed *entity.Invoice
	skipped := 0
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		inv := state.FindInvoice(id)
		if inv == nil {
			return fmt.Errorf("factura %s: %w", id, domain.ErrNotFound)
		}
		if inv.Status != entity.InvoiceStatusDraft {
			return fmt.Errorf("%w: factura %s en estado %s", domain.ErrInvalidTransition, inv.InvoiceNumber, inv.Status)
		}
		now := uc.clock.Now()
		skipped = 0
		for _, item := range inv.Items {
			details := fmt.Sprintf("Venta %s: -%d unidades", inv.InvoiceNumber, item.Quantity)
			if !uc.stock.DeductInTx(state, item.ArticleID, item.Quantity, details, now) {
				skipped++
			}
		}
		inv.Status = entity.InvoiceStatusConfirmed
		inv.ConfirmedAt = &now
		confirmed = cloneInvoice(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("invoice_id", id).
		Str("number", confirmed.InvoiceNumber).
		Int("lines", len(confirmed.Items)).
		Int("skipped", skipped).
		Msg("factura confirmada")
	return confirmed, nil
}

// Cancel anula una factura en borrador. Una factura confirmada ya descontó inventario
// y no puede anularse (ErrInvalidTransition). No modifica el stock.
func (uc *InvoiceUseCase) Cancel(ctx context.Context, id string) (*entity.Invoice, error) {
	var cancelled *entity.Invoice
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		inv := state.FindInvoice(id)
		if inv == nil {
			return fmt.Errorf("factura %s: %w", id, domain.ErrNotFound)
		}
		if inv.Status != entity.InvoiceStatusDraft {
			return fmt.Errorf("%w: factura %s en estado %s", domain.ErrInvalidTransition, inv.InvoiceNumber, inv.Status)
		}
		now := uc.clock.Now()
		inv.Status = entity.InvoiceStatusCancelled
		inv.CancelledAt = &now
		cancelled = cloneInvoice(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_id", id).Str("number", cancelled.InvoiceNumber).Msg("factura anulada")
	return cancelled, nil
}

// GetByID devuelve una copia de la factura.
func (uc *InvoiceUseCase) GetByID(id string) (*entity.Invoice, error) {
	inv := uc.tx.Snapshot().FindInvoice(id)
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return cloneInvoice(inv), nil
}

// List facturas en orden de emisión. status vacío = todas.
func (uc *InvoiceUseCase) List(status string) []entity.Invoice {
	invoices := uc.tx.Snapshot().Invoices
	out := make([]entity.Invoice, 0, len(invoices))
	for i := range invoices {
		if status == "" || invoices[i].Status == status {
			out = append(out, *cloneInvoice(&invoices[i]))
		}
	}
	return out
}

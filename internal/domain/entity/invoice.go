package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft     = "draft"     // borrador, sin efecto en inventario
	InvoiceStatusConfirmed = "confirmed" // asentada, descontó inventario (terminal)
	InvoiceStatusCancelled = "cancelled" // anulada (terminal)
)

// Invoice representa una factura de venta.
type Invoice struct {
	ID             string          `json:"id"`
	InvoiceNumber  string          `json:"invoiceNumber"` // FAC-000001
	Customer       Customer        `json:"customer"`
	Items          []InvoiceItem   `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	IVA            decimal.Decimal `json:"iva"`
	Total          decimal.Decimal `json:"total"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	ConfirmedAt    *time.Time      `json:"confirmedAt,omitempty"`
	CancelledAt    *time.Time      `json:"cancelledAt,omitempty"`
	ResolucionDIAN string          `json:"resolucionDian,omitempty"` // leyenda estática
}

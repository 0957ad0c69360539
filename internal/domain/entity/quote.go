package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	QuoteStatusActive    = "active"
	QuoteStatusConverted = "converted" // terminal, enlazada a una factura
	QuoteStatusExpired   = "expired"   // ValidUntil vencido
)

// Quote cotización (propuesta no vinculante) con vigencia.
type Quote struct {
	ID                   string          `json:"id"`
	QuoteNumber          string          `json:"quoteNumber"` // COT-000001
	Customer             Customer        `json:"customer"`
	Items                []InvoiceItem   `json:"items"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	IVA                  decimal.Decimal `json:"iva"`
	Total                decimal.Decimal `json:"total"`
	Status               string          `json:"status"`
	ValidUntil           time.Time       `json:"validUntil"`
	CreatedAt            time.Time       `json:"createdAt"`
	ConvertedToInvoiceID string          `json:"convertedToInvoiceId,omitempty"`
}

// ExpiredAt indica si la cotización activa ya venció en el instante now.
func (q *Quote) ExpiredAt(now time.Time) bool {
	return q.Status == QuoteStatusActive && q.ValidUntil.Before(now)
}

package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/inventario-local/internal/application/billing"
	"github.com/jhoicas/inventario-local/internal/domain/billing"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
)

func sampleItems() []entity.InvoiceItem {
	a := &entity.Article{ID: "a1", Code: "001", Name: "Cable UTP", Price: decimal.NewFromInt(25000)}
	return []entity.InvoiceItem{entity.NewInvoiceItem(a, 3)}
}

func TestGenerateInvoicePDF(t *testing.T) {
	items := sampleItems()
	totals := billing.ComputeTotals(items)
	confirmed := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		InvoiceNumber: "FAC-000001",
		Customer:      entity.Customer{Name: "Ferretería El Tornillo", NIT: "900123456-8"},
		Items:         items,
		Subtotal:      totals.Subtotal,
		IVA:           totals.IVA,
		Total:         totals.Total,
		Status:        entity.InvoiceStatusConfirmed,
		CreatedAt:     confirmed.Add(-time.Hour),
		ConfirmedAt:   &confirmed,
	}

	data, err := pdf.NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv,
		appbilling.Issuer{Name: "Mi Negocio", NIT: "800197268-4", Resolution: "Resolución DIAN No. 1"})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateQuotePDF(t *testing.T) {
	items := sampleItems()
	totals := billing.ComputeTotals(items)
	q := &entity.Quote{
		QuoteNumber: "COT-000001",
		Items:       items,
		Subtotal:    totals.Subtotal,
		IVA:         totals.IVA,
		Total:       totals.Total,
		Status:      entity.QuoteStatusActive,
		CreatedAt:   time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC),
		ValidUntil:  time.Date(2024, 5, 25, 8, 0, 0, 0, time.UTC),
	}

	data, err := pdf.NewMarotoPDFGenerator().GenerateQuotePDF(context.Background(), q, appbilling.Issuer{})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGeneratePDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdf.NewMarotoPDFGenerator().GenerateQuotePDF(ctx, &entity.Quote{}, appbilling.Issuer{})

	assert.ErrorIs(t, err, context.Canceled)
}

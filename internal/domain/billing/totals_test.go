package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-local/internal/domain/billing"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

func TestComputeTotals_IVA19(t *testing.T) {
	items := []entity.InvoiceItem{
		{Quantity: 3, UnitPrice: decimal.NewFromInt(25000)},
		{Quantity: 1, UnitPrice: decimal.NewFromInt(1999)},
	}
	got := billing.ComputeTotals(items)

	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(76999)), "subtotal = Σ cantidad * precio")
	assert.True(t, got.IVA.Equal(decimal.RequireFromString("14629.81")), "IVA sin redondeo: %s", got.IVA)
	assert.True(t, got.Total.Equal(got.Subtotal.Add(got.IVA)))
}

func TestComputeTotals_SinItems(t *testing.T) {
	got := billing.ComputeTotals(nil)
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.IVA.IsZero())
	assert.True(t, got.Total.IsZero())
}

func TestFormatAndParseNumber(t *testing.T) {
	assert.Equal(t, "COT-000001", billing.FormatNumber(billing.QuotePrefix, 1))
	assert.Equal(t, "FAC-001234", billing.FormatNumber(billing.InvoicePrefix, 1234))

	n, ok := billing.ParseNumber(billing.InvoicePrefix, "FAC-000042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = billing.ParseNumber(billing.InvoicePrefix, "COT-000042")
	assert.False(t, ok)
	_, ok = billing.ParseNumber(billing.QuotePrefix, "COT-abc")
	assert.False(t, ok)
}

package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-local/pkg/currency"
)

func TestFormatCOP(t *testing.T) {
	got := currency.FormatCOP(decimal.NewFromInt(25000))
	assert.Contains(t, got, "25.000")
	assert.Contains(t, got, "$")

	assert.Contains(t, currency.FormatCOP(decimal.NewFromInt(1190000)), "1.190.000")
	assert.Contains(t, currency.FormatCOP(decimal.RequireFromString("14629.81")), "14.630", "redondea al peso")
	assert.NotContains(t, currency.FormatCOP(decimal.NewFromInt(500)), ",", "sin centavos")
}

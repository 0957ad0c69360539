// Package currency formatea montos en pesos colombianos (sin centavos, separador de miles ".").
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var copFormatter = func() *money.Formatter {
	cur := money.GetCurrency(money.COP)
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
}()

// FormatCOP formatea redondeando al peso: 25000 → "$25.000".
func FormatCOP(amount decimal.Decimal) string {
	return copFormatter.Format(amount.Round(0).IntPart())
}

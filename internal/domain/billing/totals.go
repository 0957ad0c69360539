// Package billing contiene las reglas puras de cotizaciones y facturas:
// totales con IVA y formato de consecutivos.
package billing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// IVARate tarifa general de IVA en Colombia (19%).
var IVARate = decimal.NewFromFloat(0.19)

// Prefijos de consecutivo.
const (
	QuotePrefix   = "COT"
	InvoicePrefix = "FAC"
)

// Totals subtotal, IVA y total de un documento.
type Totals struct {
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals suma los totales de línea. IVA = subtotal * 0.19 sin redondeo; Total = Subtotal + IVA.
func ComputeTotals(items []entity.InvoiceItem) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	iva := subtotal.Mul(IVARate)
	return Totals{Subtotal: subtotal, IVA: iva, Total: subtotal.Add(iva)}
}

// FormatNumber arma el consecutivo: prefijo + "-" + número con 6 dígitos (COT-000001).
func FormatNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s-%06d", prefix, seq)
}

// ParseNumber extrae el número de un consecutivo con el prefijo dado. ok=false si no coincide.
func ParseNumber(prefix, number string) (int, bool) {
	rest, found := strings.CutPrefix(number, prefix+"-")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

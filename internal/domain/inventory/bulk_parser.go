// Package inventory contiene reglas puras del inventario: el formato de carga masiva
// (código, nombre, marca, unidades, precio, [referencia]).
package inventory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MinBulkFields campos mínimos de una línea válida.
const MinBulkFields = 5

// FieldSeparators caracteres que ningún campo de texto puede contener: partirían la línea.
const FieldSeparators = ",\t\r\n"

var (
	fieldSep     = regexp.MustCompile(`\t|,`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// BulkRecord una línea ya interpretada de la carga masiva.
type BulkRecord struct {
	Line      int // 1-based, para logs
	Code      string
	Name      string
	Brand     string
	Units     int
	Price     decimal.Decimal
	Reference string
}

// ParseBulk interpreta el texto completo. Las líneas con menos de 5 campos se omiten sin error.
func ParseBulk(text string) []BulkRecord {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	out := make([]BulkRecord, 0, len(lines))
	for i, line := range lines {
		rec, ok := ParseBulkLine(line)
		if !ok {
			continue
		}
		rec.Line = i + 1
		out = append(out, rec)
	}
	return out
}

// ParseBulkLine separa por coma o tabulador. Unidades y precio inválidos quedan en 0.
func ParseBulkLine(line string) (BulkRecord, bool) {
	parts := fieldSep.Split(strings.TrimRight(line, "\r"), -1)
	if len(parts) < MinBulkFields {
		return BulkRecord{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	rec := BulkRecord{
		Code:  parts[0],
		Name:  parts[1],
		Brand: parts[2],
		Units: parseUnits(parts[3]),
		Price: parsePrice(parts[4]),
	}
	if len(parts) > 5 {
		rec.Reference = parts[5]
	}
	return rec, true
}

// parseUnits toma el entero inicial ("12 und" → 12); negativo o ilegible → 0.
func parseUnits(s string) int {
	m := leadingInt.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parsePrice toma el número decimal inicial ("25000.50abc" → 25000.50); negativo o ilegible → 0.
func parsePrice(s string) decimal.Decimal {
	m := leadingFloat.FindString(s)
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// HasSeparator true si s no puede viajar como un campo de la carga masiva.
func HasSeparator(s string) bool {
	return strings.ContainsAny(s, FieldSeparators)
}

var separatorReplacer = strings.NewReplacer(",", " ", "\t", " ", "\r", " ", "\n", " ")

// FormatBulkLine inverso de ParseBulkLine: code,name,brand,units,price,reference.
// Un separador dentro de un campo (datos anteriores a la validación) se escribe como espacio,
// así la línea nunca desplaza columnas al reimportarse.
func FormatBulkLine(code, name, brand string, units int, price decimal.Decimal, reference string) string {
	return strings.Join([]string{
		separatorReplacer.Replace(code),
		separatorReplacer.Replace(name),
		separatorReplacer.Replace(brand),
		strconv.Itoa(units),
		price.String(),
		separatorReplacer.Replace(reference),
	}, ",")
}

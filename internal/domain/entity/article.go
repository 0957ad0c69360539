package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article representa un artículo (SKU) del inventario.
// Code es la llave de negocio: única en todo el inventario.
type Article struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Reference string          `json:"reference"`
	Units     int             `json:"units"` // nunca negativo
	Price     decimal.Decimal `json:"price"` // pesos colombianos, sin centavos
	SectionID string          `json:"sectionId,omitempty"` // vacío = inventario general
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// InSection indica si el artículo pertenece a la sección dada.
func (a *Article) InSection(sectionID string) bool {
	return a.SectionID != "" && a.SectionID == sectionID
}

// Deduct descuenta qty unidades; el stock nunca baja de cero.
func (a *Article) Deduct(qty int) {
	a.Units -= qty
	if a.Units < 0 {
		a.Units = 0
	}
}

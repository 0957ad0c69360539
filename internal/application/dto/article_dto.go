package dto

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// CreateArticleRequest entrada para crear un artículo. SectionID vacío = inventario general.
// Los campos de texto no admiten coma, tabulador ni salto de línea (bulkfield).
type CreateArticleRequest struct {
	Code      string          `json:"code" validate:"required,max=64,bulkfield"`
	Name      string          `json:"name" validate:"required,max=200,bulkfield"`
	Brand     string          `json:"brand" validate:"max=100,bulkfield"`
	Reference string          `json:"reference" validate:"max=200,bulkfield"`
	Units     int             `json:"units" validate:"gte=0"`
	Price     decimal.Decimal `json:"price" validate:"gte=0"`
	SectionID string          `json:"sectionId"`
}

// UpdateArticleRequest campos opcionales; nil = no se modifica. SectionID "" saca de la sección.
type UpdateArticleRequest struct {
	Code      *string          `json:"code" validate:"omitempty,min=1,max=64,bulkfield"`
	Name      *string          `json:"name" validate:"omitempty,min=1,max=200,bulkfield"`
	Brand     *string          `json:"brand" validate:"omitempty,max=100,bulkfield"`
	Reference *string          `json:"reference" validate:"omitempty,max=200,bulkfield"`
	Units     *int             `json:"units" validate:"omitempty,gte=0"`
	Price     *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	SectionID *string          `json:"sectionId"`
}

// BulkImportRequest texto de carga masiva (code,name,brand,units,price[,reference] por línea).
type BulkImportRequest struct {
	Data string `json:"data" validate:"required"`
}

// BulkImportResult artículos creados y actualizados por la carga masiva.
type BulkImportResult struct {
	Added   []entity.Article `json:"added"`
	Updated []entity.Article `json:"updated"`
}

// InventoryStats resumen del inventario.
type InventoryStats struct {
	Articles      int             `json:"articles"`
	Sections      int             `json:"sections"`
	TotalUnits    int             `json:"totalUnits"`
	TotalValue    decimal.Decimal `json:"totalValue"`    // Σ precio * unidades
	LowStock      int             `json:"lowStock"`      // unidades <= umbral (incluye agotados)
	OutOfStock    int             `json:"outOfStock"`    // unidades == 0
	LowStockLimit int             `json:"lowStockLimit"`
}

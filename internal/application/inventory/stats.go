package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-local/internal/application/dto"
)

// LowStockThreshold unidades a partir de las cuales un artículo se considera con stock bajo.
const LowStockThreshold = 5

// Stats resume el inventario: valor total (precio * unidades), unidades y alertas de stock.
// Los agotados también cuentan como stock bajo.
func (uc *ArticleUseCase) Stats() dto.InventoryStats {
	state := uc.tx.Snapshot()
	stats := dto.InventoryStats{
		Articles:      len(state.Articles),
		Sections:      len(state.Sections),
		TotalValue:    decimal.Zero,
		LowStockLimit: LowStockThreshold,
	}
	for _, a := range state.Articles {
		stats.TotalUnits += a.Units
		stats.TotalValue = stats.TotalValue.Add(a.Price.Mul(decimal.NewFromInt(int64(a.Units))))
		if a.Units <= LowStockThreshold {
			stats.LowStock++
		}
		if a.Units == 0 {
			stats.OutOfStock++
		}
	}
	return stats
}

package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// Detalles fijos del historial.
const (
	DetailAddedToSection = "Agregado a sección específica"
	DetailAddedToGeneral = "Agregado a inventario general"
	DetailUpdated        = "Información actualizada"
	DetailDeleted        = "Artículo eliminado"
)

// RecordActivity agrega una entrada al inicio del historial y lo recorta a MaxRecentActivities.
// Se llama dentro de TxRunner.Run, sobre el estado de trabajo.
func RecordActivity(state *entity.InventoryState, article *entity.Article, action, details string, now time.Time) {
	entry := entity.RecentActivity{
		ID:          uuid.New().String(),
		ArticleCode: article.Code,
		ArticleName: article.Name,
		Action:      action,
		Timestamp:   now,
		Details:     details,
	}
	activities := make([]entity.RecentActivity, 0, min(len(state.RecentActivities)+1, entity.MaxRecentActivities))
	activities = append(activities, entry)
	for _, a := range state.RecentActivities {
		if len(activities) == entity.MaxRecentActivities {
			break
		}
		activities = append(activities, a)
	}
	state.RecentActivities = activities
}

// ActivityUseCase lectura del historial reciente.
type ActivityUseCase struct {
	tx ports.TxRunner
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(tx ports.TxRunner) *ActivityUseCase {
	return &ActivityUseCase{tx: tx}
}

// List devuelve las últimas limit entradas, más reciente primero. limit <= 0 devuelve todas.
func (uc *ActivityUseCase) List(limit int) []entity.RecentActivity {
	all := uc.tx.Snapshot().RecentActivities
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	return append([]entity.RecentActivity{}, all[:limit]...)
}

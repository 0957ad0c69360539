package entity

import "time"

// Acciones registradas en la actividad reciente.
const (
	ActivityCreated = "created"
	ActivityUpdated = "updated"
	ActivityDeleted = "deleted"
)

// MaxRecentActivities tope del historial; las entradas más antiguas se descartan.
const MaxRecentActivities = 50

// RecentActivity entrada del historial de cambios sobre artículos (más reciente primero).
type RecentActivity struct {
	ID          string    `json:"id"`
	ArticleCode string    `json:"articleCode"`
	ArticleName string    `json:"articleName"`
	Action      string    `json:"action"`
	Timestamp   time.Time `json:"timestamp"`
	Details     string    `json:"details,omitempty"`
}

package entity

import "time"

// Section agrupa artículos. La relación es débil: Article.SectionID apunta a la sección
// pero borrar la sección no borra sus artículos.
type Section struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

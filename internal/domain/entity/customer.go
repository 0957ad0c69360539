package entity

import "time"

// Customer representa un cliente. Es inmutable; cotizaciones y facturas guardan una copia.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"` // NIT o cédula (Colombia)
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

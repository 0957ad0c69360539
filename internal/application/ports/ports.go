// Package ports define los contratos que la capa de aplicación espera de la infraestructura.
// Siguiendo DIP, los casos de uso solo conocen estas interfaces.
package ports

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// TxRunner ejecuta una mutación atómica sobre el agregado InventoryState.
// Si fn devuelve error no queda ningún cambio aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(state *entity.InventoryState) error) error
	// Snapshot estado vigente; no debe modificarse.
	Snapshot() *entity.InventoryState
}

// Clock fuente de la hora actual (inyectable en tests).
type Clock interface {
	Now() time.Time
}

// SystemClock reloj del sistema.
type SystemClock struct{}

// Now implementa Clock.
func (SystemClock) Now() time.Time { return time.Now() }

package repository

import "context"

// SnapshotRepository puerto de persistencia del agregado completo (DIP).
// Load devuelve (nil, nil) cuando la ranura aún no existe; Save reemplaza el snapshot entero.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

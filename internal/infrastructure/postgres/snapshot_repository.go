package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// Querier abstrae pool o tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SnapshotRepo implementación de SnapshotRepository sobre la tabla inventory_snapshots.
type SnapshotRepo struct {
	q   Querier
	key string
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier, key string) *SnapshotRepo {
	return &SnapshotRepo{q: q, key: key}
}

// Migrate crea la tabla si no existe.
func (r *SnapshotRepo) Migrate(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS inventory_snapshots (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("migrate inventory_snapshots: %w", err)
	}
	return nil
}

// Load obtiene el snapshot de la clave; (nil, nil) si no existe.
func (r *SnapshotRepo) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := r.q.QueryRow(ctx, `SELECT data::text FROM inventory_snapshots WHERE key = $1`, r.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return data, nil
}

// Save reemplaza el snapshot (upsert).
func (r *SnapshotRepo) Save(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO inventory_snapshots (key, data, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, r.key, string(data)); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

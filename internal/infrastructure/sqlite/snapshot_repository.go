// Package sqlite guarda el snapshot del inventario en una tabla clave-valor SQLite
// (driver modernc, 100% Go, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots(
  key        TEXT PRIMARY KEY,
  data       BLOB NOT NULL,
  updated_at INTEGER NOT NULL
);`

// SnapshotRepository ranura SQLite identificada por key.
type SnapshotRepository struct {
	db  *sql.DB
	key string
}

// Open abre (o crea) la base en path y aplica el esquema.
// WAL + busy_timeout para que una CLI y el servidor no choquen con "database is locked".
func Open(ctx context.Context, path, key string) (*SnapshotRepository, error) {
	if key == "" {
		return nil, fmt.Errorf("sqlite: clave vacía")
	}
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // un solo escritor
	db.SetConnMaxIdleTime(2 * time.Minute)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: migrar: %w", err)
	}
	return &SnapshotRepository{db: db, key: key}, nil
}

// Close cierra la base.
func (r *SnapshotRepository) Close() error { return r.db.Close() }

// Load devuelve el snapshot de la clave o (nil, nil) si no existe.
func (r *SnapshotRepository) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, r.key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: leer snapshot: %w", err)
	}
	return data, nil
}

// Save reemplaza el snapshot (upsert).
func (r *SnapshotRepository) Save(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO snapshots(key, data, updated_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		r.key, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("sqlite: guardar snapshot: %w", err)
	}
	return nil
}

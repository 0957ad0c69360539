// Package snapshot implementa ranuras clave-valor simples para el snapshot del inventario:
// archivo JSON local y memoria (tests / modo efímero).
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var (
	_ repository.SnapshotRepository = (*FileRepository)(nil)
	_ repository.SnapshotRepository = (*MemoryRepository)(nil)
)

// FileRepository guarda el snapshot en <dir>/<key>.json.
type FileRepository struct {
	path string
}

// NewFileRepository construye el adaptador y crea el directorio si no existe.
func NewFileRepository(dir, key string) (*FileRepository, error) {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) {
		return nil, fmt.Errorf("snapshot: clave inválida %q", key)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: crear directorio: %w", err)
	}
	return &FileRepository{path: filepath.Join(dir, key+".json")}, nil
}

// Path ruta del archivo del snapshot.
func (r *FileRepository) Path() string { return r.path }

// Load lee el archivo; si no existe devuelve (nil, nil).
func (r *FileRepository) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot: leer %s: %w", r.path, err)
	}
	return data, nil
}

// Save escribe en un temporal y lo renombra, así un corte a mitad no deja el archivo truncado.
func (r *FileRepository) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot: crear temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("snapshot: escribir: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("snapshot: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("snapshot: renombrar: %w", err)
	}
	return nil
}

// MemoryRepository ranura en memoria; no sobrevive al proceso.
type MemoryRepository struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryRepository construye la ranura, opcionalmente con un snapshot inicial.
func NewMemoryRepository(initial []byte) *MemoryRepository {
	return &MemoryRepository{data: initial}
}

// Load devuelve una copia del último snapshot guardado.
func (r *MemoryRepository) Load(_ context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil, nil
	}
	return append([]byte(nil), r.data...), nil
}

// Save reemplaza el snapshot.
func (r *MemoryRepository) Save(_ context.Context, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append([]byte(nil), data...)
	r.saves++
	return nil
}

// Saves cantidad de guardados realizados.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

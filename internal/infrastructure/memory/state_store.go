// Package memory mantiene el agregado InventoryState en memoria con un único escritor.
// Cada mutación trabaja sobre una copia, se persiste como snapshot completo y solo
// entonces reemplaza al estado vigente (copy-on-write): los lectores nunca ven cambios parciales.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// StateStore implementa inventory.TxRunner y billing.TxRunner sobre el agregado en memoria.
type StateStore struct {
	mu    sync.Mutex
	state *entity.InventoryState
	repo  repository.SnapshotRepository
	log   *logger.Logger
}

// NewStateStore construye el store con estado vacío. Llamar Load antes de usarlo.
func NewStateStore(repo repository.SnapshotRepository, log *logger.Logger) *StateStore {
	if log == nil {
		log = logger.Nop()
	}
	return &StateStore{
		state: entity.NewInventoryState(),
		repo:  repo,
		log:   log.Component("state_store"),
	}
}

// Load lee el snapshot una sola vez. Ranura vacía o JSON corrupto → estado vacío (nunca fatal).
// Solo los errores de E/S del adaptador se devuelven.
func (s *StateStore) Load(ctx context.Context) error {
	data, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar snapshot: %w", err)
	}

	state := entity.NewInventoryState()
	if len(data) > 0 {
		decoded, decErr := Decode(data)
		if decErr != nil {
			s.log.Warn().Err(decErr).Msg("snapshot ilegible, se inicia con inventario vacío")
		} else {
			state = decoded
		}
	}
	Migrate(state)

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.log.Info().
		Int("articles", len(state.Articles)).
		Int("quotes", len(state.Quotes)).
		Int("invoices", len(state.Invoices)).
		Int64("version", state.Version).
		Msg("snapshot cargado")
	return nil
}

// Run ejecuta fn sobre una copia del estado. Si fn falla o el guardado falla, la copia se
// descarta y el estado vigente no cambia. Si todo sale bien se incrementa Version.
func (s *StateStore) Run(ctx context.Context, fn func(state *entity.InventoryState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.Clone()
	if err := fn(working); err != nil {
		return err
	}
	working.Version++

	data, err := Encode(working)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	if err := s.repo.Save(ctx, data); err != nil {
		s.log.Error().Err(err).Int64("version", working.Version).Msg("no se pudo guardar el snapshot")
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	s.state = working
	s.log.Debug().Int64("version", working.Version).Int("bytes", len(data)).Msg("snapshot guardado")
	return nil
}

// Snapshot devuelve el estado vigente. Es inmutable: Run nunca modifica un estado publicado.
func (s *StateStore) Snapshot() *entity.InventoryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

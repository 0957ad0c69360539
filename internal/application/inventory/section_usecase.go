package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// SectionUseCase CRUD de secciones (agrupaciones de artículos).
type SectionUseCase struct {
	tx    ports.TxRunner
	clock ports.Clock
	log   *logger.Logger
}

// NewSectionUseCase construye el caso de uso.
func NewSectionUseCase(tx ports.TxRunner, clock ports.Clock, log *logger.Logger) *SectionUseCase {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SectionUseCase{tx: tx, clock: clock, log: log.Component("sections")}
}

func (uc *SectionUseCase) Create(ctx context.Context, in dto.CreateSectionRequest) (*entity.Section, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	section := entity.Section{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   uc.clock.Now(),
	}
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		state.Sections = append(state.Sections, section)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("section_id", section.ID).Str("name", section.Name).Msg("sección creada")
	return &section, nil
}

func (uc *SectionUseCase) Update(ctx context.Context, id string, in dto.UpdateSectionRequest) (*entity.Section, error) {
	var updated entity.Section
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		s := state.FindSection(id)
		if s == nil {
			return fmt.Errorf("sección %s: %w", id, domain.ErrNotFound)
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.ErrInvalidInput
			}
			s.Name = name
		}
		if in.Description != nil {
			s.Description = strings.TrimSpace(*in.Description)
		}
		updated = *s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina la sección; sus artículos pasan al inventario general.
func (uc *SectionUseCase) Delete(ctx context.Context, id string) error {
	released := 0
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		idx := -1
		for i := range state.Sections {
			if state.Sections[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("sección %s: %w", id, domain.ErrNotFound)
		}
		state.Sections = append(state.Sections[:idx], state.Sections[idx+1:]...)
		for i := range state.Articles {
			if state.Articles[i].SectionID == id {
				state.Articles[i].SectionID = ""
				released++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("section_id", id).Int("released_articles", released).Msg("sección eliminada")
	return nil
}

func (uc *SectionUseCase) GetByID(id string) (*entity.Section, error) {
	s := uc.tx.Snapshot().FindSection(id)
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := *s
	return &out, nil
}

func (uc *SectionUseCase) List() []entity.Section {
	return append([]entity.Section{}, uc.tx.Snapshot().Sections...)
}

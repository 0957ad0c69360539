package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	bulk "github.com/jhoicas/inventario-local/internal/domain/inventory"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// ArticleUseCase CRUD de artículos sobre el agregado InventoryState.
type ArticleUseCase struct {
	tx    ports.TxRunner
	clock ports.Clock
	log   *logger.Logger
}

// NewArticleUseCase construye el caso de uso. clock y log nil usan los valores por defecto.
func NewArticleUseCase(tx ports.TxRunner, clock ports.Clock, log *logger.Logger) *ArticleUseCase {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ArticleUseCase{tx: tx, clock: clock, log: log.Component("articles")}
}

// Create agrega un artículo. El código es la llave: si ya existe, el artículo se actualiza
// con los datos recibidos (created=false) en lugar de duplicarse. La sección, si viene, debe existir
// y solo se cambia cuando se indica.
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.CreateArticleRequest) (article *entity.Article, created bool, err error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" || in.Units < 0 || in.Price.IsNegative() {
		return nil, false, domain.ErrInvalidInput
	}
	if err := rejectSeparators(code, name, strings.TrimSpace(in.Brand), strings.TrimSpace(in.Reference)); err != nil {
		return nil, false, err
	}

	var result entity.Article
	err = uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		if in.SectionID != "" && state.FindSection(in.SectionID) == nil {
			return fmt.Errorf("sección %s: %w", in.SectionID, domain.ErrNotFound)
		}
		now := uc.clock.Now()
		if existing := state.FindArticleByCode(code); existing != nil {
			existing.Name = name
			existing.Brand = strings.TrimSpace(in.Brand)
			existing.Reference = strings.TrimSpace(in.Reference)
			existing.Units = in.Units
			existing.Price = in.Price
			if in.SectionID != "" {
				existing.SectionID = in.SectionID
			}
			existing.UpdatedAt = now
			result = *existing
			RecordActivity(state, existing, entity.ActivityUpdated, DetailUpdated, now)
			return nil
		}
		result = entity.Article{
			ID:        uuid.New().String(),
			Code:      code,
			Name:      name,
			Brand:     strings.TrimSpace(in.Brand),
			Reference: strings.TrimSpace(in.Reference),
			Units:     in.Units,
			Price:     in.Price,
			SectionID: in.SectionID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		created = true
		state.Articles = append(state.Articles, result)
		RecordActivity(state, &result, entity.ActivityCreated, addedDetail(result.SectionID), now)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	uc.log.Info().Str("article_id", result.ID).Str("code", result.Code).Bool("created", created).Msg("artículo guardado")
	return &result, created, nil
}

// Update aplica los campos no nil. El historial registra el artículo ya actualizado.
func (uc *ArticleUseCase) Update(ctx context.Context, id string, in dto.UpdateArticleRequest) (*entity.Article, error) {
	for _, field := range []*string{in.Code, in.Name, in.Brand, in.Reference} {
		if field == nil {
			continue
		}
		if err := rejectSeparators(strings.TrimSpace(*field)); err != nil {
			return nil, err
		}
	}

	var updated entity.Article
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		a := state.FindArticle(id)
		if a == nil {
			return fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
		}
		if in.Code != nil {
			code := strings.TrimSpace(*in.Code)
			if code == "" {
				return domain.ErrInvalidInput
			}
			if other := state.FindArticleByCode(code); other != nil && other.ID != a.ID {
				return fmt.Errorf("código %s: %w", code, domain.ErrDuplicate)
			}
			a.Code = code
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.ErrInvalidInput
			}
			a.Name = name
		}
		if in.Brand != nil {
			a.Brand = strings.TrimSpace(*in.Brand)
		}
		if in.Reference != nil {
			a.Reference = strings.TrimSpace(*in.Reference)
		}
		if in.Units != nil {
			if *in.Units < 0 {
				return domain.ErrInvalidInput
			}
			a.Units = *in.Units
		}
		if in.Price != nil {
			if in.Price.IsNegative() {
				return domain.ErrInvalidInput
			}
			a.Price = *in.Price
		}
		if in.SectionID != nil {
			if *in.SectionID != "" && state.FindSection(*in.SectionID) == nil {
				return fmt.Errorf("sección %s: %w", *in.SectionID, domain.ErrNotFound)
			}
			a.SectionID = *in.SectionID
		}
		now := uc.clock.Now()
		a.UpdatedAt = now
		updated = *a
		RecordActivity(state, a, entity.ActivityUpdated, DetailUpdated, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("article_id", id).Msg("artículo actualizado")
	return &updated, nil
}

// Delete elimina el artículo; el historial guarda código y nombre previos.
func (uc *ArticleUseCase) Delete(ctx context.Context, id string) error {
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		for i := range state.Articles {
			if state.Articles[i].ID != id {
				continue
			}
			removed := state.Articles[i]
			state.Articles = append(state.Articles[:i], state.Articles[i+1:]...)
			RecordActivity(state, &removed, entity.ActivityDeleted, DetailDeleted, uc.clock.Now())
			return nil
		}
		return fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("article_id", id).Msg("artículo eliminado")
	return nil
}

// GetByID devuelve una copia del artículo.
func (uc *ArticleUseCase) GetByID(id string) (*entity.Article, error) {
	a := uc.tx.Snapshot().FindArticle(id)
	if a == nil {
		return nil, domain.ErrNotFound
	}
	out := *a
	return &out, nil
}

// List artículos en orden de inserción. sectionID vacío = todos.
func (uc *ArticleUseCase) List(sectionID string) []entity.Article {
	state := uc.tx.Snapshot()
	out := make([]entity.Article, 0, len(state.Articles))
	for i := range state.Articles {
		if sectionID == "" || state.Articles[i].InSection(sectionID) {
			out = append(out, state.Articles[i])
		}
	}
	return out
}

// DeductInTx descuenta unidades dentro de una transacción ya abierta (confirmación de factura).
// El stock queda en cero como mínimo. Devuelve false si el artículo ya no existe.
func (uc *ArticleUseCase) DeductInTx(state *entity.InventoryState, articleID string, quantity int, details string, now time.Time) bool {
	a := state.FindArticle(articleID)
	if a == nil {
		uc.log.Warn().Str("article_id", articleID).Msg("artículo eliminado, se omite el descuento")
		return false
	}
	a.Deduct(quantity)
	a.UpdatedAt = now
	RecordActivity(state, a, entity.ActivityUpdated, details, now)
	return true
}

// rejectSeparators los campos de texto viajan tal cual en la exportación de carga masiva.
func rejectSeparators(values ...string) error {
	for _, v := range values {
		if bulk.HasSeparator(v) {
			return fmt.Errorf("%w: %q contiene coma, tabulador o salto de línea", domain.ErrInvalidInput, v)
		}
	}
	return nil
}

func addedDetail(sectionID string) string {
	if sectionID != "" {
		return DetailAddedToSection
	}
	return DetailAddedToGeneral
}

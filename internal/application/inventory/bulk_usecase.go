package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	bulk "github.com/jhoicas/inventario-local/internal/domain/inventory"
)

// BulkAdd importa el texto de carga masiva en una sola transacción.
// Código existente → se actualiza; código nuevo → se crea en el inventario general.
// Las líneas incompletas se omiten. El resultado trae los valores ya aplicados.
func (uc *ArticleUseCase) BulkAdd(ctx context.Context, text string) (*dto.BulkImportResult, error) {
	records := bulk.ParseBulk(text)
	result := &dto.BulkImportResult{Added: []entity.Article{}, Updated: []entity.Article{}}
	if len(records) == 0 {
		return result, nil
	}

	var addedIDs, updatedIDs []string
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		now := uc.clock.Now()
		seen := make(map[string]bool, len(records))
		for _, rec := range records {
			if rec.Code == "" || rec.Name == "" {
				uc.log.Debug().Int("line", rec.Line).Msg("línea sin código o nombre, se omite")
				continue
			}
			if a := state.FindArticleByCode(rec.Code); a != nil {
				a.Name = rec.Name
				a.Brand = rec.Brand
				a.Units = rec.Units
				a.Price = rec.Price
				a.Reference = rec.Reference
				a.UpdatedAt = now
				RecordActivity(state, a, entity.ActivityUpdated, DetailUpdated, now)
				if !seen[a.ID] {
					seen[a.ID] = true
					updatedIDs = append(updatedIDs, a.ID)
				}
				continue
			}
			created := entity.Article{
				ID:        uuid.New().String(),
				Code:      rec.Code,
				Name:      rec.Name,
				Brand:     rec.Brand,
				Reference: rec.Reference,
				Units:     rec.Units,
				Price:     rec.Price,
				CreatedAt: now,
				UpdatedAt: now,
			}
			state.Articles = append(state.Articles, created)
			RecordActivity(state, &created, entity.ActivityCreated, DetailAddedToGeneral, now)
			seen[created.ID] = true
			addedIDs = append(addedIDs, created.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	state := uc.tx.Snapshot()
	for _, id := range addedIDs {
		if a := state.FindArticle(id); a != nil {
			result.Added = append(result.Added, *a)
		}
	}
	for _, id := range updatedIDs {
		if a := state.FindArticle(id); a != nil {
			result.Updated = append(result.Updated, *a)
		}
	}
	uc.log.Info().
		Int("lines", len(records)).
		Int("added", len(result.Added)).
		Int("updated", len(result.Updated)).
		Msg("carga masiva aplicada")
	return result, nil
}

// Export devuelve los artículos en el formato de carga masiva, una línea por artículo.
// sectionID vacío exporta todo el inventario.
func (uc *ArticleUseCase) Export(sectionID string) string {
	var b strings.Builder
	for _, a := range uc.List(sectionID) {
		b.WriteString(bulk.FormatBulkLine(a.Code, a.Name, a.Brand, a.Units, a.Price, a.Reference))
		b.WriteByte('\n')
	}
	return b.String()
}

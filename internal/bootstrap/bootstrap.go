// Package bootstrap arma el store y los casos de uso a partir de la configuración.
// Lo comparten el servidor HTTP y la CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/application/billing"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	infrapdf "github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-local/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-local/internal/infrastructure/snapshot"
	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// Services casos de uso listos para los adaptadores de entrada.
type Services struct {
	Store    *memory.StateStore
	Articles *inventory.ArticleUseCase
	Sections *inventory.SectionUseCase
	Search   *inventory.SearchUseCase
	Activity *inventory.ActivityUseCase
	Customer *billing.CustomerUseCase
	Quotes   *billing.QuoteUseCase
	Invoices *billing.InvoiceUseCase
	PDF      *billing.PDFUseCase
}

// OpenRepository abre la ranura del snapshot según STORE_DRIVER.
// closeFn libera la conexión (no-op para file y memory).
func OpenRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (repo repository.SnapshotRepository, closeFn func(), err error) {
	switch cfg.Store.Driver {
	case config.StoreDriverFile:
		fileRepo, err := snapshot.NewFileRepository(cfg.Store.Dir, cfg.Store.Key)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("driver", "file").Str("path", fileRepo.Path()).Msg("ranura de snapshot")
		return fileRepo, func() {}, nil
	case config.StoreDriverSQLite:
		sqliteRepo, err := sqlite.Open(ctx, cfg.Store.SQLitePath, cfg.Store.Key)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("driver", "sqlite").Str("path", cfg.Store.SQLitePath).Msg("ranura de snapshot")
		return sqliteRepo, func() {
			if err := sqliteRepo.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar sqlite")
			}
		}, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		pgRepo := postgres.NewSnapshotRepository(pool, cfg.Store.Key)
		if err := pgRepo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("driver", "postgres").Str("host", cfg.DB.Host).Msg("ranura de snapshot")
		return pgRepo, pool.Close, nil
	case config.StoreDriverMemory:
		log.Warn().Msg("driver memory: los cambios no sobreviven al proceso")
		return snapshot.NewMemoryRepository(nil), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("driver de snapshot desconocido %q", cfg.Store.Driver)
	}
}

// New abre la ranura, carga el snapshot y construye los casos de uso.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Services, func(), error) {
	repo, closeFn, err := OpenRepository(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	store := memory.NewStateStore(repo, log)
	if err := store.Load(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	svc, err := Wire(store, ports.SystemClock{}, cfg, log)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return svc, closeFn, nil
}

// Wire construye los casos de uso sobre un store ya cargado.
func Wire(store *memory.StateStore, clock ports.Clock, cfg *config.Config, log *logger.Logger) (*Services, error) {
	articles := inventory.NewArticleUseCase(store, clock, log)
	search, err := inventory.NewSearchUseCase(store, cfg.Search.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("caché de búsqueda: %w", err)
	}
	issuer := billing.Issuer{
		Name:       cfg.Billing.CompanyName,
		NIT:        cfg.Billing.CompanyNIT,
		Resolution: cfg.Billing.Resolution,
	}
	return &Services{
		Store:    store,
		Articles: articles,
		Sections: inventory.NewSectionUseCase(store, clock, log),
		Search:   search,
		Activity: inventory.NewActivityUseCase(store),
		Customer: billing.NewCustomerUseCase(store, clock, log),
		Quotes: billing.NewQuoteUseCase(store, clock, billing.QuoteSettings{
			ValidDays:  cfg.Billing.QuoteValidDays,
			Resolution: cfg.Billing.Resolution,
		}, log),
		Invoices: billing.NewInvoiceUseCase(store, articles, clock, cfg.Billing.Resolution, log),
		PDF:      billing.NewPDFUseCase(store, infrapdf.NewMarotoPDFGenerator(), issuer),
	}, nil
}

package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/bootstrap"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func fileConfig(dir string) *config.Config {
	return &config.Config{
		Store:   config.StoreConfig{Driver: config.StoreDriverFile, Dir: dir, Key: "inventory_data"},
		Billing: config.BillingConfig{QuoteValidDays: 15},
		Search:  config.SearchConfig{CacheSize: 16},
	}
}

func TestNew_DriverFileSobreviveReinicio(t *testing.T) {
	ctx := context.Background()
	cfg := fileConfig(t.TempDir())

	svc, closeFn, err := bootstrap.New(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	_, created, err := svc.Articles.Create(ctx, dto.CreateArticleRequest{Code: "001", Name: "Cable", Units: 3})
	require.NoError(t, err)
	assert.True(t, created)
	closeFn()

	svc, closeFn, err = bootstrap.New(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer closeFn()
	list := svc.Articles.List("")
	require.Len(t, list, 1)
	assert.Equal(t, "Cable", list[0].Name)
}

func TestOpenRepository_Memory(t *testing.T) {
	cfg := fileConfig("")
	cfg.Store.Driver = config.StoreDriverMemory

	repo, closeFn, err := bootstrap.OpenRepository(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer closeFn()

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestOpenRepository_DriverDesconocido(t *testing.T) {
	cfg := fileConfig(t.TempDir())
	cfg.Store.Driver = "redis"

	_, _, err := bootstrap.OpenRepository(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

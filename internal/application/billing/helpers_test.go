package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/billing"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/snapshot"
)

const testResolution = "Resolución DIAN No. 18764000000000"

// manualClock reloj que solo avanza cuando el test lo pide.
type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fixture agrupa los casos de uso sobre un mismo store.
type fixture struct {
	store     *memory.StateStore
	repo      *snapshot.MemoryRepository
	clock     *manualClock
	articles  *inventory.ArticleUseCase
	customers *billing.CustomerUseCase
	quotes    *billing.QuoteUseCase
	invoices  *billing.InvoiceUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := snapshot.NewMemoryRepository(nil)
	store := memory.NewStateStore(repo, nil)
	require.NoError(t, store.Load(context.Background()))
	clock := &manualClock{now: time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)}
	articles := inventory.NewArticleUseCase(store, clock, nil)
	return &fixture{
		store:     store,
		repo:      repo,
		clock:     clock,
		articles:  articles,
		customers: billing.NewCustomerUseCase(store, clock, nil),
		quotes:    billing.NewQuoteUseCase(store, clock, billing.QuoteSettings{ValidDays: 15, Resolution: testResolution}, nil),
		invoices:  billing.NewInvoiceUseCase(store, articles, clock, testResolution, nil),
	}
}

func (f *fixture) article(t *testing.T, code string, units int, price int64) *entity.Article {
	t.Helper()
	a, _, err := f.articles.Create(context.Background(), dto.CreateArticleRequest{
		Code: code, Name: "Artículo " + code, Units: units, Price: decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) customer(t *testing.T) *entity.Customer {
	t.Helper()
	c, err := f.customers.Create(context.Background(), dto.CreateCustomerRequest{Name: "Ferretería El Tornillo", NIT: "900123456-8"})
	require.NoError(t, err)
	return c
}

func items(pairs ...any) []dto.DocumentItemRequest {
	out := make([]dto.DocumentItemRequest, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, dto.DocumentItemRequest{ArticleID: pairs[i].(string), Quantity: pairs[i+1].(int)})
	}
	return out
}

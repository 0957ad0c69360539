package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/domain"
	domainbilling "github.com/jhoicas/inventario-local/internal/domain/billing"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// Vigencia de las cotizaciones, en días.
const (
	DefaultQuoteValidDays = 15
	MaxQuoteValidDays     = 3650
)

// QuoteSettings parámetros de cotizaciones y de la factura que resulta al convertirlas.
type QuoteSettings struct {
	ValidDays  int
	Resolution string
}

// QuoteUseCase cotizaciones: creación, vencimiento y conversión a factura.
type QuoteUseCase struct {
	tx       ports.TxRunner
	clock    ports.Clock
	settings QuoteSettings
	log      *logger.Logger
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(tx ports.TxRunner, clock ports.Clock, settings QuoteSettings, log *logger.Logger) *QuoteUseCase {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if settings.ValidDays <= 0 || settings.ValidDays > MaxQuoteValidDays {
		settings.ValidDays = DefaultQuoteValidDays
	}
	if log == nil {
		log = logger.Nop()
	}
	return &QuoteUseCase{tx: tx, clock: clock, settings: settings, log: log.Component("quotes")}
}

// Create emite una cotización activa con consecutivo COT. validDays <= 0 usa la vigencia configurada;
// más de MaxQuoteValidDays es ErrInvalidInput.
func (uc *QuoteUseCase) Create(ctx context.Context, in dto.CreateQuoteRequest) (*entity.Quote, error) {
	if in.ValidDays > MaxQuoteValidDays {
		return nil, fmt.Errorf("%w: vigencia de %d días supera el máximo de %d", domain.ErrInvalidInput, in.ValidDays, MaxQuoteValidDays)
	}
	days := in.ValidDays
	if days <= 0 {
		days = uc.settings.ValidDays
	}

	var quote entity.Quote
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		customer, err := findCustomer(state, in.CustomerID)
		if err != nil {
			return err
		}
		items, err := buildItems(state, in.Items)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		state.Sequences.Quote++
		totals := domainbilling.ComputeTotals(items)
		quote = entity.Quote{
			ID:          uuid.New().String(),
			QuoteNumber: domainbilling.FormatNumber(domainbilling.QuotePrefix, state.Sequences.Quote),
			Customer:    customer,
			Items:       items,
			Subtotal:    totals.Subtotal,
			IVA:         totals.IVA,
			Total:       totals.Total,
			Status:      entity.QuoteStatusActive,
			ValidUntil:  now.Add(time.Duration(days) * 24 * time.Hour),
			CreatedAt:   now,
		}
		state.Quotes = append(state.Quotes, quote)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("quote_id", quote.ID).
		Str("number", quote.QuoteNumber).
		Str("total", quote.Total.String()).
		Msg("cotización creada")
	return cloneQuote(&quote), nil
}

// ExpireQuotes marca como vencidas las cotizaciones activas cuya vigencia pasó.
// Devuelve cuántas cambiaron; si ninguna vence no se guarda nada.
func (uc *QuoteUseCase) ExpireQuotes(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	if !anyExpired(uc.tx.Snapshot(), now) {
		return 0, nil
	}
	expired := 0
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		expired = 0
		for i := range state.Quotes {
			if state.Quotes[i].ExpiredAt(now) {
				state.Quotes[i].Status = entity.QuoteStatusExpired
				expired++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int("expired", expired).Msg("cotizaciones vencidas")
	return expired, nil
}

// GetByID devuelve la cotización, aplicando antes el vencimiento por fecha.
func (uc *QuoteUseCase) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	if _, err := uc.ExpireQuotes(ctx); err != nil {
		return nil, err
	}
	q := uc.tx.Snapshot().FindQuote(id)
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return cloneQuote(q), nil
}

// List cotizaciones en orden de emisión, con el vencimiento ya aplicado.
func (uc *QuoteUseCase) List(ctx context.Context) ([]entity.Quote, error) {
	if _, err := uc.ExpireQuotes(ctx); err != nil {
		return nil, err
	}
	quotes := uc.tx.Snapshot().Quotes
	out := make([]entity.Quote, 0, len(quotes))
	for i := range quotes {
		out = append(out, *cloneQuote(&quotes[i]))
	}
	return out, nil
}

// Convert genera una factura en borrador con el cliente y las líneas de la cotización.
// Solo desde activa; una cotización vencida por fecha queda marcada y se devuelve ErrQuoteExpired.
// Las cantidades no se revalidan contra el stock: eso ocurre al confirmar la factura.
func (uc *QuoteUseCase) Convert(ctx context.Context, quoteID string) (*entity.Invoice, error) {
	var (
		invoice     entity.Invoice
		justExpired bool
	)
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		q := state.FindQuote(quoteID)
		if q == nil {
			return fmt.Errorf("cotización %s: %w", quoteID, domain.ErrNotFound)
		}
		now := uc.clock.Now()
		if q.ExpiredAt(now) {
			q.Status = entity.QuoteStatusExpired
			justExpired = true
			return nil
		}
		switch q.Status {
		case entity.QuoteStatusActive:
		case entity.QuoteStatusExpired:
			return fmt.Errorf("cotización %s: %w", q.QuoteNumber, domain.ErrQuoteExpired)
		default:
			return fmt.Errorf("%w: cotización %s en estado %s", domain.ErrInvalidTransition, q.QuoteNumber, q.Status)
		}
		items := append([]entity.InvoiceItem{}, q.Items...)
		invoice = appendInvoice(state, q.Customer, items, uc.settings.Resolution, now)
		q.Status = entity.QuoteStatusConverted
		q.ConvertedToInvoiceID = invoice.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	if justExpired {
		return nil, fmt.Errorf("cotización %s: %w", quoteID, domain.ErrQuoteExpired)
	}
	uc.log.Info().Str("quote_id", quoteID).Str("invoice", invoice.InvoiceNumber).Msg("cotización convertida")
	return cloneInvoice(&invoice), nil
}

func anyExpired(state *entity.InventoryState, now time.Time) bool {
	for i := range state.Quotes {
		if state.Quotes[i].ExpiredAt(now) {
			return true
		}
	}
	return false
}


package billing

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
	"github.com/jhoicas/inventario-local/pkg/nit"
)

// CustomerUseCase casos de uso para clientes (facturación).
type CustomerUseCase struct {
	tx    ports.TxRunner
	clock ports.Clock
	log   *logger.Logger
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(tx ports.TxRunner, clock ports.Clock, log *logger.Logger) *CustomerUseCase {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CustomerUseCase{tx: tx, clock: clock, log: log.Component("customers")}
}

// Create registra un cliente. Nombre y NIT son obligatorios; si el NIT trae DV se verifica.
// No se admiten dos clientes con el mismo NIT.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	name := strings.TrimSpace(in.Name)
	taxID := strings.TrimSpace(in.NIT)
	if name == "" || taxID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := nit.Validate(taxID); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	customer := entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		NIT:       taxID,
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: uc.clock.Now(),
	}
	err := uc.tx.Run(ctx, func(state *entity.InventoryState) error {
		base := nit.Base(taxID)
		for _, c := range state.Customers {
			if nit.Base(c.NIT) == base {
				return fmt.Errorf("nit %s: %w", taxID, domain.ErrDuplicate)
			}
		}
		state.Customers = append(state.Customers, customer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("customer_id", customer.ID).Str("nit", customer.NIT).Msg("cliente creado")
	return &customer, nil
}

// GetByID devuelve una copia del cliente.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	c := uc.tx.Snapshot().FindCustomer(id)
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := *c
	return &out, nil
}

// List clientes en orden de registro.
func (uc *CustomerUseCase) List() []entity.Customer {
	return append([]entity.Customer{}, uc.tx.Snapshot().Customers...)
}

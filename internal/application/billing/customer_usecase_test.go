package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
)

func TestCustomer_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.customers.Create(ctx, dto.CreateCustomerRequest{
		Name: " Ana Gómez ", NIT: "1020304050", Phone: "3001234567", Email: "ana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Gómez", c.Name)

	got, err := f.customers.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "1020304050", got.NIT)
	assert.Len(t, f.customers.List(), 1)

	_, err = f.customers.GetByID("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomer_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Sin NIT"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.customers.Create(ctx, dto.CreateCustomerRequest{NIT: "900123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "DV malo", NIT: "900123456-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Uno", NIT: "900123456-8"})
	require.NoError(t, err)
	_, err = f.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Otro formato", NIT: "900.123.456"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Len(t, f.customers.List(), 1)
}

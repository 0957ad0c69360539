package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-local/internal/application/billing"
	"github.com/jhoicas/inventario-local/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes (facturación).
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  entity.Customer
// @Failure      400   {object}  dto.ErrorResponse  "nombre/NIT faltante o DV incorrecto"
// @Failure      409   {object}  dto.ErrorResponse  "ya existe un cliente con ese NIT"
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	customer, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

// ActivityHandler historial reciente de cambios sobre artículos.
type ActivityHandler struct {
	uc *inventory.ActivityUseCase
}

func NewActivityHandler(uc *inventory.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List GET /api/activities?limit=10
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.QueryInt("limit", 0)))
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

// SectionHandler maneja las peticiones HTTP de secciones.
type SectionHandler struct {
	uc *inventory.SectionUseCase
}

// NewSectionHandler construye el handler.
func NewSectionHandler(uc *inventory.SectionUseCase) *SectionHandler {
	return &SectionHandler{uc: uc}
}

// Create POST /api/sections
func (h *SectionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSectionRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	section, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(section)
}

// List GET /api/sections
func (h *SectionHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID GET /api/sections/:id
func (h *SectionHandler) GetByID(c *fiber.Ctx) error {
	section, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(section)
}

// Update PUT /api/sections/:id
func (h *SectionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSectionRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	section, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(section)
}

// Delete DELETE /api/sections/:id. Los artículos de la sección pasan al inventario general.
func (h *SectionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-local/internal/application/billing"
	"github.com/jhoicas/inventario-local/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturación.
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Crear factura en borrador (no descuenta inventario)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Cliente y líneas"
// @Success      201   {object}  entity.Invoice
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	invoice, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List GET /api/invoices?status=draft
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Query("status")))
}

// GetByID obtiene el detalle completo de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoice)
}

// Confirm godoc
// @Summary      Confirmar factura y descontar inventario
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  entity.Invoice
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "la factura no está en borrador"
// @Router       /api/invoices/{id}/confirm [post]
func (h *InvoiceHandler) Confirm(c *fiber.Ctx) error {
	invoice, err := h.uc.Confirm(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoice)
}

// Cancel POST /api/invoices/:id/cancel. Solo facturas en borrador.
func (h *InvoiceHandler) Cancel(c *fiber.Ctx) error {
	invoice, err := h.uc.Cancel(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(invoice)
}

// PDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.InvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, data, filename)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-local/internal/application/billing"
	"github.com/jhoicas/inventario-local/internal/application/dto"
)

// QuoteHandler maneja las peticiones HTTP de cotizaciones.
type QuoteHandler struct {
	uc  *billing.QuoteUseCase
	pdf *billing.PDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *billing.QuoteUseCase, pdf *billing.PDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Crear cotización
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "Cliente, líneas y vigencia en días"
// @Success      201   {object}  entity.Quote
// @Failure      404   {object}  dto.ErrorResponse  "cliente o artículo no encontrado"
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	quote, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// List GET /api/quotes
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/quotes/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	quote, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(quote)
}

// Convert godoc
// @Summary      Convertir cotización en factura borrador
// @Tags         quotes
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Success      201  {object}  entity.Invoice
// @Failure      409  {object}  dto.ErrorResponse  "cotización vencida o ya convertida"
// @Router       /api/quotes/{id}/convert [post]
func (h *QuoteHandler) Convert(c *fiber.Ctx) error {
	invoice, err := h.uc.Convert(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// PDF GET /api/quotes/:id/pdf
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.QuotePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, data, filename)
}

func sendPDF(c *fiber.Ctx, data []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

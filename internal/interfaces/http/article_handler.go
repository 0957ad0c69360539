package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ArticleHandler maneja las peticiones HTTP de artículos, carga masiva y búsqueda.
type ArticleHandler struct {
	uc     *inventory.ArticleUseCase
	search *inventory.SearchUseCase
}

// NewArticleHandler construye el handler.
func NewArticleHandler(uc *inventory.ArticleUseCase, search *inventory.SearchUseCase) *ArticleHandler {
	return &ArticleHandler{uc: uc, search: search}
}

// Create godoc
// @Summary      Crear o actualizar artículo por código
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleRequest  true  "Datos del artículo"
// @Success      201   {object}  entity.Article  "creado"
// @Success      200   {object}  entity.Article  "el código ya existía: actualizado"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "sección no encontrada"
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	article, created, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(article)
	}
	return c.JSON(article)
}

// List godoc
// @Summary      Listar artículos
// @Tags         articles
// @Produce      json
// @Param        sectionId  query  string  false  "Filtrar por sección"
// @Success      200  {object}  dto.ListResponse[entity.Article]
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	list := h.uc.List(c.Query("sectionId"))
	return c.JSON(dto.ListResponse[entity.Article]{Items: list, Total: len(list)})
}

// GetByID GET /api/articles/:id
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	article, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(article)
}

// Update godoc
// @Summary      Actualizar artículo (campos parciales)
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del artículo"
// @Param        body  body  dto.UpdateArticleRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Article
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "código usado por otro artículo"
// @Router       /api/articles/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticleRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	article, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(article)
}

// Delete DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Bulk godoc
// @Summary      Carga masiva (code,name,brand,units,price[,reference] por línea)
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkImportRequest  true  "Texto separado por coma o tabulador"
// @Success      200   {object}  dto.BulkImportResult
// @Router       /api/articles/bulk [post]
func (h *ArticleHandler) Bulk(c *fiber.Ctx) error {
	var in dto.BulkImportRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	res, err := h.uc.BulkAdd(c.UserContext(), in.Data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Search GET /api/articles/search?q=cb&sectionId=...
func (h *ArticleHandler) Search(c *fiber.Ctx) error {
	list := h.search.Search(c.Query("q"), c.Query("sectionId"))
	return c.JSON(dto.ListResponse[entity.Article]{Items: list, Total: len(list)})
}

// Export GET /api/articles/export?sectionId=... (texto en formato de carga masiva)
func (h *ArticleHandler) Export(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="articulos.csv"`)
	return c.SendString(h.uc.Export(c.Query("sectionId")))
}

// Stats GET /api/stats
func (h *ArticleHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.Stats())
}

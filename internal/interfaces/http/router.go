package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-local/internal/application/billing"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticleUC  *inventory.ArticleUseCase
	SectionUC  *inventory.SectionUseCase
	SearchUC   *inventory.SearchUseCase
	ActivityUC *inventory.ActivityUseCase
	CustomerUC *billing.CustomerUseCase
	QuoteUC    *billing.QuoteUseCase
	InvoiceUC  *billing.InvoiceUseCase
	PDFUC      *billing.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Articles (las rutas fijas van antes de /:id)
	articles := api.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC, deps.SearchUC)
	articles.Get("/search", articleHandler.Search)
	articles.Get("/export", articleHandler.Export)
	articles.Post("/bulk", articleHandler.Bulk)
	articles.Post("/", articleHandler.Create)
	articles.Get("/", articleHandler.List)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Put("/:id", articleHandler.Update)
	articles.Delete("/:id", articleHandler.Delete)
	api.Get("/stats", articleHandler.Stats)

	// Sections
	sections := api.Group("/sections")
	sectionHandler := NewSectionHandler(deps.SectionUC)
	sections.Post("/", sectionHandler.Create)
	sections.Get("/", sectionHandler.List)
	sections.Get("/:id", sectionHandler.GetByID)
	sections.Put("/:id", sectionHandler.Update)
	sections.Delete("/:id", sectionHandler.Delete)

	// Customers (facturación)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Quotes
	quotes := api.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.PDFUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Post("/:id/convert", quoteHandler.Convert)
	quotes.Get("/:id/pdf", quoteHandler.PDF)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id/confirm", invoiceHandler.Confirm)
	invoices.Post("/:id/cancel", invoiceHandler.Cancel)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Activity log
	activityHandler := NewActivityHandler(deps.ActivityUC)
	api.Get("/activities", activityHandler.List)
}

package entity

import "github.com/shopspring/decimal"

// InvoiceItem línea de cotización o factura. Guarda código, nombre y precio del artículo
// al momento de agregarla; no se modifica después de creada.
type InvoiceItem struct {
	ArticleID   string          `json:"articleId"`
	ArticleCode string          `json:"articleCode"`
	ArticleName string          `json:"articleName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"` // Quantity * UnitPrice
}

// NewInvoiceItem construye la línea a partir del artículo y calcula el total.
func NewInvoiceItem(article *Article, quantity int) InvoiceItem {
	return InvoiceItem{
		ArticleID:   article.ID,
		ArticleCode: article.Code,
		ArticleName: article.Name,
		Quantity:    quantity,
		UnitPrice:   article.Price,
		Total:       article.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

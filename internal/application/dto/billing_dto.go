package dto

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	NIT     string `json:"nit" validate:"required,max=20"`
	Address string `json:"address" validate:"max=200"`
	Phone   string `json:"phone" validate:"max=30"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

// DocumentItemRequest línea pedida: artículo y cantidad. El precio se toma del artículo.
type DocumentItemRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CreateQuoteRequest body para POST /api/quotes. ValidDays <= 0 usa el valor configurado.
type CreateQuoteRequest struct {
	CustomerID string                `json:"customerId" validate:"required"`
	Items      []DocumentItemRequest `json:"items" validate:"required,min=1,dive"`
	ValidDays  int                   `json:"validDays" validate:"gte=0,lte=3650"`
}

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	CustomerID string                `json:"customerId" validate:"required"`
	Items      []DocumentItemRequest `json:"items" validate:"required,min=1,dive"`
}

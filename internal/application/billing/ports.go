package billing

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// StockDeducter integra facturación con inventario.
// DeductInTx descuenta dentro de la transacción del caller (misma copia del estado),
// dejando el stock en cero como mínimo. Devuelve false si el artículo ya no existe.
type StockDeducter interface {
	DeductInTx(state *entity.InventoryState, articleID string, quantity int, details string, now time.Time) bool
}

// Issuer datos del negocio que emite los documentos (encabezado del PDF).
type Issuer struct {
	Name       string
	NIT        string
	Resolution string
}

// DocumentPDFGenerator genera la representación en PDF de cotizaciones y facturas.
type DocumentPDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote, issuer Issuer) ([]byte, error)
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, issuer Issuer) ([]byte, error)
}

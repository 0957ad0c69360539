package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/domain"
)

// PDFUseCase genera el PDF de cotizaciones y facturas.
type PDFUseCase struct {
	tx        ports.TxRunner
	generator DocumentPDFGenerator
	issuer    Issuer
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(tx ports.TxRunner, generator DocumentPDFGenerator, issuer Issuer) *PDFUseCase {
	return &PDFUseCase{tx: tx, generator: generator, issuer: issuer}
}

// QuotePDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *PDFUseCase) QuotePDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	q := uc.tx.Snapshot().FindQuote(id)
	if q == nil {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, cloneQuote(q), uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("cotizacion_%s.pdf", q.QuoteNumber), nil
}

// InvoicePDF devuelve los bytes del PDF y el nombre de archivo sugerido.
// La leyenda de resolución es la guardada en la factura, no la configurada hoy.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	inv := uc.tx.Snapshot().FindInvoice(id)
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	issuer := uc.issuer
	if inv.ResolucionDIAN != "" {
		issuer.Resolution = inv.ResolucionDIAN
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, cloneInvoice(inv), issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", inv.InvoiceNumber), nil
}

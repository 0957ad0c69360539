// Package pdf genera la representación impresa de cotizaciones y facturas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + NIT        │  COTIZACIÓN/FACTURA + N°     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + NIT + dirección / contacto               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Descripción | Cant | P.Unit | Total         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA 19% / TOTAL                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: vigencia (cotización) o resolución (factura)          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/inventario-local/internal/application/billing"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var statusLabels = map[string]string{
	entity.QuoteStatusActive:      "VIGENTE",
	entity.QuoteStatusConverted:   "CONVERTIDA EN FACTURA",
	entity.QuoteStatusExpired:     "VENCIDA",
	entity.InvoiceStatusDraft:     "BORRADOR",
	entity.InvoiceStatusConfirmed: "CONFIRMADA",
	entity.InvoiceStatusCancelled: "ANULADA",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ appbilling.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// document datos comunes a cotización y factura.
type document struct {
	title     string
	number    string
	status    string
	createdAt time.Time
	customer  entity.Customer
	items     []entity.InvoiceItem
	subtotal  decimal.Decimal
	iva       decimal.Decimal
	total     decimal.Decimal
	footer    []string
}

// GenerateQuotePDF genera el PDF de la cotización.
func (g *MarotoPDFGenerator) GenerateQuotePDF(ctx context.Context, q *entity.Quote, issuer appbilling.Issuer) ([]byte, error) {
	return g.render(ctx, document{
		title:     "COTIZACIÓN",
		number:    q.QuoteNumber,
		status:    q.Status,
		createdAt: q.CreatedAt,
		customer:  q.Customer,
		items:     q.Items,
		subtotal:  q.Subtotal,
		iva:       q.IVA,
		total:     q.Total,
		footer: []string{
			"Válida hasta: " + q.ValidUntil.Format("02/01/2006"),
			"Esta cotización no constituye factura ni reserva inventario.",
		},
	}, issuer)
}

// GenerateInvoicePDF genera el PDF de la factura.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, issuer appbilling.Issuer) ([]byte, error) {
	footer := []string{}
	if issuer.Resolution != "" {
		footer = append(footer, issuer.Resolution)
	}
	if inv.ConfirmedAt != nil {
		footer = append(footer, "Confirmada: "+inv.ConfirmedAt.Format("02/01/2006 15:04"))
	}
	if inv.CancelledAt != nil {
		footer = append(footer, "Anulada: "+inv.CancelledAt.Format("02/01/2006 15:04"))
	}
	return g.render(ctx, document{
		title:     "FACTURA DE VENTA",
		number:    inv.InvoiceNumber,
		status:    inv.Status,
		createdAt: inv.CreatedAt,
		customer:  inv.Customer,
		items:     inv.Items,
		subtotal:  inv.Subtotal,
		iva:       inv.IVA,
		total:     inv.Total,
		footer:    footer,
	}, issuer)
}

func (g *MarotoPDFGenerator) render(ctx context.Context, doc document, issuer appbilling.Issuer) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.title+" "+doc.number, true).
		WithAuthor(nonEmpty(issuer.Name, "Inventario"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc.customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(doc.items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(doc.footer)...)

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdf.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio + NIT (izq) y tipo, número, fecha y estado (der).
func headerRow(doc document, issuer appbilling.Issuer) core.Row {
	statusColor := colorGray
	if doc.status == entity.InvoiceStatusCancelled || doc.status == entity.QuoteStatusExpired {
		statusColor = colorAlert
	}
	left := []core.Component{
		text.New(nonEmpty(issuer.Name, "Inventario"), props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	}
	if issuer.NIT != "" {
		left = append(left, text.New("NIT: "+issuer.NIT, props.Text{Size: 9, Top: 9, Color: colorGray}))
	}
	return row.New(22).Add(
		col.New(7).Add(left...),
		col.New(5).Add(
			text.New(doc.title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+doc.createdAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New(statusLabels[doc.status], props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 17, Color: statusColor,
			}),
		),
	)
}

// customerRow: datos del cliente tal como quedaron en el documento.
func customerRow(c entity.Customer) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT/CC: %s   |   Dirección: %s", nonEmpty(c.NIT, "—"), nonEmpty(c.Address, "—")),
				props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s", nonEmpty(c.Phone, "—"), nonEmpty(c.Email, "—")),
				props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea del documento.
func tableItemRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(it.ArticleCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(it.ArticleName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(currency.FormatCOP(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(currency.FormatCOP(it.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(doc document) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(d decimal.Decimal, top float64) core.Component {
		return text.New(currency.FormatCOP(d), props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("IVA 19%:", 6),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 12,
			}),
		),
		col.New(3).Add(
			value(doc.subtotal, 1),
			value(doc.iva, 6),
			text.New(currency.FormatCOP(doc.total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 12,
			}),
		),
	)
}

func footerRows(lines []string) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 7.5, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

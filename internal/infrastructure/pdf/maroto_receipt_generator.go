// Package pdf genera el comprobante de un pedido de la tienda.
//
// Layout de la página A5:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Logo + Nombre  │  Pedido + Fecha    │
//	│  ─────────────────────────────────────────  │
//	│  ENTREGA: Cliente / Dirección / Teléfono     │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal  │
//	│  ─────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Envío / TOTAL           │
//	│  FOOTER: QR con el código + estado           │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/burger-house/internal/domain/entity"
)

// ── Paleta ───────────────────────────────────────────────────────────────────

var (
	colorAccent = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDark   = &props.Color{Red: 30, Green: 30, Blue: 30}
)

// ── Generator ────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa ordering.ReceiptGenerator con Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	order entity.Order,
	store entity.StoreSettings,
	deliveryFee decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido #"+order.ID, true).
		WithAuthor(store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.5}))
	m.AddRows(deliveryRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(order.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.3}))
	m.AddRows(totalsRow(order, deliveryFee))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ────────────────────────────────────────────────────────────────

func headerRow(order entity.Order, store entity.StoreSettings) core.Row {
	title := store.Name
	// Un logo imagen no se descarga; en el PDF solo va el texto.
	if !store.IsLogoImage && store.Logo != "" && isASCII(store.Logo) {
		title = store.Logo + " " + store.Name
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorAccent, Top: 1,
			}),
			text.New("Premium Taste", props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorAccent, Top: 1,
			}),
			text.New("#"+order.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New(order.PlacedAt().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func deliveryRow(order entity.Order) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorAccent, Top: 1,
			}),
			text.New(nonEmpty(order.UserName, "Invitado"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5, Color: colorDark,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s",
				nonEmpty(order.Address, "—"),
				nonEmpty(order.Phone, "—"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorDark, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func tableLineRows(lines []entity.CartLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.Name
		if l.HasDiscount() {
			name = fmt.Sprintf("%s (-%s%%)", l.Name, l.Discount.String())
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatMoney(l.EffectivePrice()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatMoney(l.LineTotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(order entity.Order, deliveryFee decimal.Decimal) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	subtotal := order.Total.Sub(deliveryFee)

	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:", 1),
			label("Envío:", 6),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorAccent, Right: 2, Top: 12}),
		),
		col.New(4).Add(
			value(formatMoney(subtotal), 1),
			value(formatMoney(deliveryFee), 6),
			text.New(formatMoney(order.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorAccent, Right: 1, Top: 12}),
		),
	)
}

func footerRow(order entity.Order) core.Row {
	return row.New(34).Add(
		col.New(4).Add(code.NewQr(order.ID, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("Estado: "+strings.ToUpper(string(order.Status)), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3, Color: colorDark,
			}),
			text.New("Presenta este código al repartidor para\nconfirmar la entrega.", props.Text{
				Size: 8, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney "$12.34" con dos decimales fijos.
func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// isASCII las fuentes base del PDF no tienen glifos para emoji.
func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

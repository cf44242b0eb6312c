// Package pdf implementa la representación gráfica de los reportes de
// inventario usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del reporte  │  Tipo + Fecha de generación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / unidades / valor total del stock       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant | P.Costo | Valor stock | Estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda del documento                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/eco-stock/eco-stock-api/internal/application/reports"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
)

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 56}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	report *entity.Report,
	details []*entity.ReportDetail,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(details))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(details) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del reporte (izq) y tipo + fecha de generación (der).
func headerRow(report *entity.Report) core.Row {
	fecha := report.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Description, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.TypeName, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales del reporte (productos, unidades, valor del stock).
func summaryRow(details []*entity.ReportDetail) core.Row {
	var units int64
	total := decimal.Zero
	for _, d := range details {
		units += d.Quantity
		total = total.Add(d.StockValue)
	}
	resumen := fmt.Sprintf("Productos: %d   |   Unidades: %d   |   Valor total del stock: $%s",
		len(details), units, formatMoney(total.StringFixed(0)))
	return row.New(10).Add(
		col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(resumen, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("P. Costo", 2, align.Right),
		h("Valor stock", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

// tableDetailRows: una fila por producto del reporte.
func tableDetailRows(details []*entity.ReportDetail) []core.Row {
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				d.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(d.UnitCost.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(d.StockValue.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				d.StockState,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda del documento.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Instantánea del inventario al momento de generarse el reporte. "+
				"El stock vigente puede diferir; consulte el sistema para valores actuales.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

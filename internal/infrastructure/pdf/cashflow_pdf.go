// Package pdf implementa el reporte de flujo de caja en PDF ("Xuất Báo Cáo").
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ingresos / Egresos / Ganancia                      │
//	│  GASTOS POR CATEGORÍA                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Socio | Peso | Valor                  │
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

	"github.com/qlkp/reciclaje-api/internal/application/report"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 96, Blue: 64}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Ensure CashFlowPDFGenerator implements report.CashFlowPDFGenerator.
var _ report.CashFlowPDFGenerator = (*CashFlowPDFGenerator)(nil)

// CashFlowPDFGenerator implementa report.CashFlowPDFGenerator usando Maroto v2.
type CashFlowPDFGenerator struct{}

// NewCashFlowPDFGenerator construye el generador.
func NewCashFlowPDFGenerator() *CashFlowPDFGenerator { return &CashFlowPDFGenerator{} }

// GenerateCashFlowPDF genera el PDF y devuelve sus bytes.
func (g *CashFlowPDFGenerator) GenerateCashFlowPDF(_ context.Context, data report.CashFlowData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Flujo de Caja", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(data))

	if len(data.ByCategory) > 0 {
		m.AddRows(categoryHeaderRow())
		for _, cat := range data.ByCategory {
			m.AddRows(categoryRow(cat.Category, cat.Total))
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, tx := range data.Movements {
		m.AddRows(movementRow(tx))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data report.CashFlowData) core.Row {
	period := fmt.Sprintf("Período: %s - %s",
		data.From.Format("02/01/2006"), data.To.Format("02/01/2006"))

	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE FLUJO DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Planta de reciclaje de plástico", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(period, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func totalsRow(data report.CashFlowData) core.Row {
	profit := data.Totals.Revenue.Sub(data.Totals.Expense)
	profitColor := colorPrimary
	if profit.IsNegative() {
		profitColor = colorRed
	}

	return row.New(16).Add(
		totalCol("Ingresos", data.Totals.Revenue, colorPrimary),
		totalCol("Egresos", data.Totals.Expense, colorRed),
		totalCol("Ganancia", profit, profitColor),
	)
}

func totalCol(label string, value decimal.Decimal, color *props.Color) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
		text.New(formatVND(value), props.Text{
			Style: fontstyle.Bold, Size: 12, Color: color, Top: 7, Align: align.Center,
		}),
	)
}

func categoryHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(12).Add(
			text.New("Gastos por categoría", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func categoryRow(category string, total decimal.Decimal) core.Row {
	return row.New(5).Add(
		col.New(6).Add(text.New(category, props.Text{Size: 8, Left: 4})),
		col.New(6).Add(text.New(formatVND(total), props.Text{Size: 8, Align: align.Right})),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(6).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(2).Add(text.New("Tipo", header)),
		col.New(4).Add(text.New("Socio / Nota", header)),
		col.New(2).Add(text.New("Peso (kg)", alignedRight(header))),
		col.New(2).Add(text.New("Valor (VND)", alignedRight(header))),
	)
}

func movementRow(tx *entity.Transaction) core.Row {
	detail := tx.PartnerName
	if detail == "" {
		detail = tx.Note
	}
	cell := props.Text{Size: 8}
	return row.New(5).Add(
		col.New(2).Add(text.New(tx.Date.Format("02/01/2006"), cell)),
		col.New(2).Add(text.New(tx.Type, cell)),
		col.New(4).Add(text.New(detail, cell)),
		col.New(2).Add(text.New(tx.Weight.StringFixed(1), alignedRight(cell))),
		col.New(2).Add(text.New(formatVND(tx.TotalValue), alignedRight(cell))),
	)
}

func alignedRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}

// formatVND agrupa los miles con punto, ej. 20.000.000.
func formatVND(v decimal.Decimal) string {
	s := v.StringFixed(0)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Package pdf genera el reporte de salud de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + N° reporte  │  Fecha de referencia        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: estado | productos | %                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Estado | Cantidad | Valor | Ubicaciones  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GRUPOS (group_by=location): una línea por ubicación         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
	"strings"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/estoque-analytics/internal/application/dto"
	engine "github.com/jhoicas/estoque-analytics/internal/domain/analytics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// StockHealthPDF implementa ports.StockReportRenderer usando Maroto v2.
type StockHealthPDF struct {
	printer *message.Printer
}

// NewStockHealthPDF construye el renderer. Los números se formatean en pt-BR (1.234,56).
func NewStockHealthPDF() *StockHealthPDF {
	return &StockHealthPDF{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

func (g *StockHealthPDF) ContentType() string { return "application/pdf" }
func (g *StockHealthPDF) Extension() string   { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *StockHealthPDF) Render(report *dto.StockHealthDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Salud de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRows(report.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.itemRows(report.Items)...)

	if len(report.Groups) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(g.groupRows(report.Groups)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *StockHealthPDF) headerRow(report *dto.StockHealthDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("SALUD DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte "+report.ReportID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha de referencia", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.ReferenceDate.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(g.printer.Sprintf("%d productos", report.Summary.Total), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func (g *StockHealthPDF) summaryRows(s dto.GroupSummaryDTO) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("RESUMEN POR ESTADO", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
	}
	for _, status := range orderedStatuses(s.Counts) {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(status, props.Text{Size: 8, Left: 2})),
			col.New(2).Add(text.New(g.printer.Sprintf("%d", s.Counts[status]), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(g.number(s.Percentages[status])+"%", props.Text{Size: 8, Align: align.Right, Color: colorGray})),
			col.New(4),
		))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Estado", 2, align.Left),
		h("Cantidad", 2, align.Right),
		h("Valor", 2, align.Right),
		h("Ubicaciones", 3, align.Left),
	)
}

func (g *StockHealthPDF) itemRows(items []dto.StockClassificationDTO) []core.Row {
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		statusColor := colorGray
		if engine.StockStatus(it.Status).Priority() <= engine.StockBelowMinimum.Priority() || it.Error != "" {
			statusColor = colorAlert
		}
		qty := "—"
		if it.TotalQuantity != nil {
			qty = g.number(*it.TotalQuantity)
		}
		out = append(out, row.New(6).Add(
			col.New(3).Add(text.New(it.ProductID, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.Status, props.Text{Size: 8, Top: 1, Left: 1, Color: statusColor})),
			col.New(2).Add(text.New(qty, props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(2).Add(text.New("R$ "+g.number(it.TotalValue), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(3).Add(text.New(locationSummary(it), props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return out
}

func (g *StockHealthPDF) groupRows(groups []dto.GroupSummaryDTO) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("POR UBICACIÓN", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
	}
	for _, grp := range groups {
		parts := make([]string, 0, len(grp.Counts))
		for _, status := range orderedStatuses(grp.Counts) {
			if n := grp.Counts[status]; n > 0 {
				parts = append(parts, g.printer.Sprintf("%s %d", status, n))
			}
		}
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(grp.Key, props.Text{Size: 8, Left: 2})),
			col.New(9).Add(text.New(strings.Join(parts, "  ·  "), props.Text{Size: 8, Color: colorGray})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *StockHealthPDF) number(d decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", d.InexactFloat64())
}

func locationSummary(it dto.StockClassificationDTO) string {
	if it.Error != "" {
		return it.Error
	}
	parts := make([]string, len(it.Locations))
	for i, l := range it.Locations {
		parts[i] = l.LocationID + ":" + l.Status
	}
	return strings.Join(parts, ", ")
}

// orderedStatuses ordena por prioridad de stock; los estados desconocidos van al final.
func orderedStatuses(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := engine.StockStatus(keys[i]).Priority(), engine.StockStatus(keys[j]).Priority()
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Package xlsx exporta el reporte de salud de inventario a Excel con excelize.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/estoque-analytics/internal/application/dto"
)

const (
	summarySheet   = "Resumen"
	itemsSheet     = "Productos"
	locationsSheet = "Ubicaciones"
)

// StockHealthXLSX implementa ports.StockReportRenderer.
// Hojas: Resumen (conteos por estado), Productos (una fila por producto)
// y Ubicaciones (una fila por producto y ubicación).
type StockHealthXLSX struct{}

// NewStockHealthXLSX construye el renderer.
func NewStockHealthXLSX() *StockHealthXLSX { return &StockHealthXLSX{} }

func (r *StockHealthXLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (r *StockHealthXLSX) Extension() string { return "xlsx" }

// Render arma el libro y devuelve sus bytes.
func (r *StockHealthXLSX) Render(report *dto.StockHealthDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	for _, name := range []string{itemsSheet, locationsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: hoja %s: %w", name, err)
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	w := &sheetWriter{f: f, header: bold}
	w.summary(report)
	w.items(report.Items)
	w.locations(report.Items)
	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter acumula el primer error para no chequear cada celda.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) row(sheet string, n int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("xlsx: %s!%s: %w", sheet, cell, err)
	}
}

func (w *sheetWriter) headerRow(sheet string, n int, values ...any) {
	w.row(sheet, n, values...)
	if w.err != nil {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, n)
	last, _ := excelize.CoordinatesToCellName(len(values), n)
	if err := w.f.SetCellStyle(sheet, first, last, w.header); err != nil {
		w.err = err
	}
}

func (w *sheetWriter) summary(report *dto.StockHealthDTO) {
	w.row(summarySheet, 1, "Reporte", report.ReportID)
	w.row(summarySheet, 2, "Fecha de referencia", report.ReferenceDate.Format("2006-01-02"))
	w.row(summarySheet, 3, "Productos", report.Summary.Total)
	w.headerRow(summarySheet, 5, "Estado", "Productos", "%")
	n := 6
	for _, status := range sortedKeys(report.Summary.Counts) {
		pct, _ := report.Summary.Percentages[status].Float64()
		w.row(summarySheet, n, status, report.Summary.Counts[status], pct)
		n++
	}
}

func (w *sheetWriter) items(items []dto.StockClassificationDTO) {
	w.headerRow(itemsSheet, 1, "Producto", "Estado", "Prioridad", "Cantidad", "Valor", "Error")
	for i, it := range items {
		value, _ := it.TotalValue.Float64()
		w.row(itemsSheet, i+2, it.ProductID, it.Status, it.Priority, optional(it.TotalQuantity), value, it.Error)
	}
}

func (w *sheetWriter) locations(items []dto.StockClassificationDTO) {
	w.headerRow(locationsSheet, 1, "Producto", "Ubicación", "Estado", "Cantidad", "% mínimo", "% ocupación", "Días sin movimiento")
	n := 2
	for _, it := range items {
		for _, l := range it.Locations {
			var days any
			if l.DaysSinceMovement != nil {
				days = *l.DaysSinceMovement
			}
			w.row(locationsSheet, n, it.ProductID, l.LocationID, l.Status,
				optional(l.Quantity), optional(l.MinimumPct), optional(l.OccupancyPct), days)
			n++
		}
	}
}

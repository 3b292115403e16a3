package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/estoque-analytics/internal/application/dto"
	"github.com/jhoicas/estoque-analytics/internal/infrastructure/xlsx"
)

func TestStockHealthXLSX_Render(t *testing.T) {
	qty := decimal.NewFromInt(5)
	pct := decimal.NewFromInt(50)
	days := 12
	report := &dto.StockHealthDTO{
		ReportID:      "r-1",
		ReferenceDate: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Items: []dto.StockClassificationDTO{
			{
				ProductID: "P1", Status: "BELOW_MINIMUM", Priority: 3, TotalQuantity: &qty, TotalValue: decimal.NewFromInt(10),
				Locations: []dto.LocationStatusDTO{
					{LocationID: "L1", Status: "BELOW_MINIMUM", Quantity: &qty, MinimumPct: &pct, DaysSinceMovement: &days},
					{LocationID: "L2", Status: "NORMAL"},
				},
			},
			{ProductID: "P2", Status: "UNDEFINED", Error: "registro sin producto"},
		},
		Summary: dto.GroupSummaryDTO{
			Total:       2,
			Counts:      map[string]int{"BELOW_MINIMUM": 1, "UNDEFINED": 1},
			Percentages: map[string]decimal.Decimal{"BELOW_MINIMUM": pct, "UNDEFINED": pct},
		},
	}

	r := xlsx.NewStockHealthXLSX()
	data, err := r.Render(report)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", r.Extension())

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "el libro generado debe poder abrirse")
	defer f.Close()

	assert.Equal(t, []string{"Resumen", "Productos", "Ubicaciones"}, f.GetSheetList())

	rows, err := f.GetRows("Productos")
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera + dos productos")
	assert.Equal(t, "Producto", rows[0][0])
	assert.Equal(t, "P1", rows[1][0])
	assert.Equal(t, "UNDEFINED", rows[2][1])

	locs, err := f.GetRows("Ubicaciones")
	require.NoError(t, err)
	require.Len(t, locs, 3)
	assert.Equal(t, "L2", locs[2][1])

	status, err := f.GetCellValue("Resumen", "A6")
	require.NoError(t, err)
	assert.Equal(t, "BELOW_MINIMUM", status)
}

package analytics_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-analytics/internal/domain"
	"github.com/jhoicas/estoque-analytics/internal/domain/analytics"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

var rules = analytics.DefaultStockRules()

func classifyOne(t *testing.T, opts ...entity.StockRecordOption) analytics.StockClassification {
	t.Helper()
	res, err := analytics.ClassifyStock([]entity.StockRecord{entity.NewStockRecord("P1", "L1", opts...)}, today, rules)
	require.NoError(t, err)
	return res
}

// ──────────────────────────────────────────────────────────────────────────────
// Prioridad: la primera condición verdadera gana, sin importar las demás.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyStock_NegativoDominaTodo(t *testing.T) {
	res := classifyOne(t,
		entity.WithQuantity(dec("-1")),
		entity.WithMinimum(dec("10")),
		entity.WithMaximum(dec("-5")),
		entity.WithLastMovement(day(2020, 1, 1)),
	)
	assert.Equal(t, string(analytics.StockNegative), res.Status)
	assert.Equal(t, 1, res.Priority)
}

func TestClassifyStock_CadaEstado(t *testing.T) {
	cases := []struct {
		name string
		opts []entity.StockRecordOption
		want analytics.StockStatus
	}{
		{"cero", []entity.StockRecordOption{entity.WithQuantity(dec("0")), entity.WithMinimum(dec("5"))}, analytics.StockZero},
		{"bajo mínimo", []entity.StockRecordOption{entity.WithQuantity(dec("4")), entity.WithMinimum(dec("5"))}, analytics.StockBelowMinimum},
		{"sobre máximo", []entity.StockRecordOption{entity.WithQuantity(dec("11")), entity.WithMaximum(dec("10"))}, analytics.StockAboveMaximum},
		{"sin movimiento", []entity.StockRecordOption{entity.WithQuantity(dec("3")), entity.WithLastMovement(today.AddDate(0, 0, -91))}, analytics.StockNoMovement},
		{"90 días justos es normal", []entity.StockRecordOption{entity.WithQuantity(dec("3")), entity.WithLastMovement(today.AddDate(0, 0, -90))}, analytics.StockNormal},
		{"igual al mínimo es normal", []entity.StockRecordOption{entity.WithQuantity(dec("5")), entity.WithMinimum(dec("5"))}, analytics.StockNormal},
		{"sin umbrales no es cero", []entity.StockRecordOption{entity.WithQuantity(dec("5"))}, analytics.StockNormal},
		{"cantidad ausente no es cero", []entity.StockRecordOption{entity.WithMinimum(dec("5"))}, analytics.StockNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := classifyOne(t, tc.opts...)
			assert.Equal(t, string(tc.want), res.Status)
			assert.Equal(t, tc.want.Priority(), res.Priority)
		})
	}
}

func TestResolveLocation_RegistraTodasLasSenales(t *testing.T) {
	r := entity.NewStockRecord("P1", "L1", entity.WithQuantity(dec("4")), entity.WithMinimum(dec("5")), entity.WithMaximum(dec("8")))

	ls := analytics.ResolveLocation(r, today, rules)
	require.Len(t, ls.Signals, 6)
	codes := make([]string, 0, len(ls.Signals))
	for _, s := range ls.Signals {
		codes = append(codes, s.Code)
	}
	assert.Equal(t, []string{"NEGATIVE", "ZERO", "BELOW_MINIMUM", "ABOVE_MAXIMUM", "NO_MOVEMENT", "NORMAL"}, codes)
	assert.True(t, ls.Signals[2].Matched)
	assert.False(t, ls.Signals[5].Matched)

	require.True(t, ls.MinimumPct.Valid)
	assert.True(t, ls.MinimumPct.Decimal.Equal(dec("80")))
	require.True(t, ls.OccupancyPct.Valid)
	assert.True(t, ls.OccupancyPct.Decimal.Equal(dec("50")))
}

func TestResolveLocation_MovimientoFuturoCuentaCero(t *testing.T) {
	r := entity.NewStockRecord("P1", "L1", entity.WithQuantity(dec("1")), entity.WithLastMovement(today.AddDate(0, 0, 3)))

	ls := analytics.ResolveLocation(r, today, rules)
	require.NotNil(t, ls.DaysSinceMovement)
	assert.Equal(t, 0, *ls.DaysSinceMovement)
	assert.Equal(t, analytics.StockNormal, ls.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Peor de varias ubicaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyStock_PeorUbicacionDefineProducto(t *testing.T) {
	records := []entity.StockRecord{
		entity.NewStockRecord("P1", "L1", entity.WithQuantity(dec("50")), entity.WithMinimum(dec("10")), entity.WithUnitCost(dec("2"))),
		entity.NewStockRecord("P1", "L2", entity.WithQuantity(dec("3")), entity.WithMinimum(dec("10")), entity.WithUnitCost(dec("2"))),
		entity.NewStockRecord("P1", "L3", entity.WithMinimum(dec("10"))),
	}

	res, err := analytics.ClassifyStock(records, today, rules)
	require.NoError(t, err)
	assert.Equal(t, "P1", res.EntityID)
	assert.Equal(t, string(analytics.StockBelowMinimum), res.Status)
	assert.Equal(t, 3, res.Priority)
	require.Len(t, res.Locations, 3)
	assert.Equal(t, analytics.StockNormal, res.Locations[0].Status)
	assert.Equal(t, analytics.StockBelowMinimum, res.Locations[1].Status)

	require.True(t, res.TotalQuantity.Valid)
	assert.True(t, res.TotalQuantity.Decimal.Equal(dec("53")), "la ubicación sin cantidad no suma")
	assert.True(t, res.TotalValue.Equal(dec("106")))
	require.Len(t, res.Signals, 3)
	assert.Equal(t, "ubicación=L2", res.Signals[1].Detail)
}

func TestClassifyStock_SinCantidadesTotalAusente(t *testing.T) {
	res := classifyOne(t, entity.WithMinimum(dec("1")))
	assert.False(t, res.TotalQuantity.Valid)
}

func TestClassifyStock_Errores(t *testing.T) {
	_, err := analytics.ClassifyStock(nil, today, rules)
	assert.True(t, errors.Is(err, domain.ErrInsufficientData))

	_, err = analytics.ClassifyStock([]entity.StockRecord{
		entity.NewStockRecord("P1", "L1"),
		entity.NewStockRecord("P2", "L1"),
	}, today, rules)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestClassifyStock_Idempotente(t *testing.T) {
	records := []entity.StockRecord{
		entity.NewStockRecord("P1", "L1", entity.WithQuantity(dec("7")), entity.WithMaximum(dec("5"))),
		entity.NewStockRecord("P1", "L2", entity.WithQuantity(dec("1")), entity.WithLastMovement(day(2026, 1, 1))),
	}

	first, err := analytics.ClassifyStock(records, today, rules)
	require.NoError(t, err)
	second, err := analytics.ClassifyStock(records, today, rules)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, string(analytics.StockAboveMaximum), first.Status)
}

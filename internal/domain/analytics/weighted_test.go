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

func TestAggregatePrices_UnSoloEvento(t *testing.T) {
	events := []entity.PurchaseEvent{entity.NewPurchaseEvent("P1", day(2026, 5, 1), dec("10"), dec("5"))}

	stats, err := analytics.AggregatePrices(events, analytics.Window{})
	require.NoError(t, err)
	assert.True(t, stats.WeightedAverage.Equal(dec("10")), "got %s", stats.WeightedAverage)
	assert.True(t, stats.Last.Price.Equal(dec("10")))
	assert.Equal(t, 1, stats.Count)
}

func TestAggregatePrices_PonderaPorCantidadYDescartaNoPositivos(t *testing.T) {
	events := []entity.PurchaseEvent{
		entity.NewPurchaseEvent("P1", day(2026, 5, 1), dec("10"), dec("1")),
		entity.NewPurchaseEvent("P1", day(2026, 5, 2), dec("999"), dec("0")),
		entity.NewPurchaseEvent("P1", day(2026, 5, 3), dec("20"), dec("3")),
		entity.NewPurchaseEvent("P1", day(2026, 5, 4), dec("1"), dec("-2")),
	}

	stats, err := analytics.AggregatePrices(events, analytics.Window{})
	require.NoError(t, err)
	assert.True(t, stats.WeightedAverage.Equal(dec("17.5")), "(10*1 + 20*3) / 4, got %s", stats.WeightedAverage)
	assert.True(t, stats.Min.Equal(dec("10")))
	assert.True(t, stats.Max.Equal(dec("20")))
	assert.True(t, stats.TotalQuantity.Equal(dec("4")))
	assert.True(t, stats.TotalValue.Equal(dec("70")))
	assert.Equal(t, 2, stats.Count)
}

func TestAggregatePrices_SinDatosNoEsCero(t *testing.T) {
	events := []entity.PurchaseEvent{entity.NewPurchaseEvent("P1", day(2026, 5, 1), dec("10"), dec("0"))}

	_, err := analytics.AggregatePrices(events, analytics.Window{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientData))

	var ide *domain.InsufficientDataError
	require.True(t, errors.As(err, &ide))
	assert.Equal(t, "weighted_average", ide.Metric)
}

func TestAggregatePrices_UltimoPrecioPorFechaYSecuencia(t *testing.T) {
	events := []entity.PurchaseEvent{
		entity.NewPurchaseEvent("P1", day(2026, 6, 10), dec("15"), dec("1")),
		entity.NewPurchaseEvent("P1", day(2026, 6, 1), dec("11"), dec("1")),
		entity.NewPurchaseEvent("P1", day(2026, 6, 10), dec("16"), dec("1")),
	}

	stats, err := analytics.AggregatePrices(events, analytics.Window{})
	require.NoError(t, err)
	assert.True(t, stats.First.Price.Equal(dec("11")), "primera por fecha")
	assert.True(t, stats.Last.Price.Equal(dec("16")), "misma fecha: gana la de mayor secuencia")
	assert.Equal(t, 2, stats.Last.Sequence)
}

func TestAggregatePrices_RespetaVentana(t *testing.T) {
	events := []entity.PurchaseEvent{
		entity.NewPurchaseEvent("P1", day(2025, 1, 1), dec("100"), dec("10")),
		entity.NewPurchaseEvent("P1", day(2026, 9, 1), dec("10"), dec("2")),
	}

	stats, err := analytics.AggregatePrices(events, analytics.RollingWindow(day(2026, 10, 1), 180))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.True(t, stats.WeightedAverage.Equal(dec("10")))
}

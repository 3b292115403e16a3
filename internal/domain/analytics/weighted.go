package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/domain"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

// PriceObservation es una compra válida (cantidad > 0) dentro de la ventana.
// Sequence es la posición en la entrada original y desempata fechas iguales.
type PriceObservation struct {
	Date     time.Time
	Price    decimal.Decimal
	Quantity decimal.Decimal
	Sequence int
}

// PriceStats resume las compras de una ventana.
type PriceStats struct {
	WeightedAverage decimal.Decimal
	Min             decimal.Decimal
	Max             decimal.Decimal
	First           PriceObservation
	Last            PriceObservation
	Count           int
	TotalQuantity   decimal.Decimal
	TotalValue      decimal.Decimal
}

// PriceObservations filtra las compras de la ventana con cantidad positiva y las ordena por fecha.
// Con fechas iguales se conserva el orden de entrada: la última observación es la de mayor secuencia.
func PriceObservations(events []entity.PurchaseEvent, w Window) []PriceObservation {
	obs := make([]PriceObservation, 0, len(events))
	for i, e := range events {
		if !e.Quantity.GreaterThan(decimal.Zero) || !w.Contains(e.Date) {
			continue
		}
		obs = append(obs, PriceObservation{Date: e.Date, Price: e.UnitPrice, Quantity: e.Quantity, Sequence: i})
	}
	sortObservations(obs)
	return obs
}

func sortObservations(obs []PriceObservation) {
	sort.SliceStable(obs, func(i, j int) bool {
		if obs[i].Date.Equal(obs[j].Date) {
			return obs[i].Sequence < obs[j].Sequence
		}
		return obs[i].Date.Before(obs[j].Date)
	})
}

// AggregatePrices calcula promedio ponderado por cantidad, mínimo, máximo y primera/última compra.
// Sin cantidad total devuelve *domain.InsufficientDataError, nunca cero.
func AggregatePrices(events []entity.PurchaseEvent, w Window) (PriceStats, error) {
	return aggregateObservations(PriceObservations(events, w))
}

func aggregateObservations(obs []PriceObservation) (PriceStats, error) {
	if len(obs) == 0 {
		return PriceStats{}, &domain.InsufficientDataError{Metric: "weighted_average", Points: 0}
	}

	stats := PriceStats{
		Min:           obs[0].Price,
		Max:           obs[0].Price,
		First:         obs[0],
		Last:          obs[len(obs)-1],
		Count:         len(obs),
		TotalQuantity: decimal.Zero,
		TotalValue:    decimal.Zero,
	}
	for _, o := range obs {
		stats.TotalQuantity = stats.TotalQuantity.Add(o.Quantity)
		stats.TotalValue = stats.TotalValue.Add(o.Price.Mul(o.Quantity))
		stats.Min = decimal.Min(stats.Min, o.Price)
		stats.Max = decimal.Max(stats.Max, o.Price)
	}
	if stats.TotalQuantity.IsZero() {
		return PriceStats{}, &domain.InsufficientDataError{Metric: "weighted_average", Points: len(obs)}
	}
	stats.WeightedAverage = stats.TotalValue.Div(stats.TotalQuantity)
	return stats, nil
}

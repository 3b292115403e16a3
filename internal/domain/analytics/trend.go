package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/domain"
)

// TrendLabel es la tendencia de precio en la ventana.
type TrendLabel string

const (
	TrendIncrease TrendLabel = "INCREASE"
	TrendDecrease TrendLabel = "DECREASE"
	TrendStable   TrendLabel = "STABLE"
)

// DefaultDeadband tolerancia en puntos porcentuales bajo la cual no hay tendencia.
var DefaultDeadband = decimal.NewFromInt(5)

var hundred = decimal.NewFromInt(100)

// TrendResult resultado del clasificador. VariationPct inválido = variación indefinida.
type TrendResult struct {
	Label        TrendLabel
	VariationPct decimal.NullDecimal
	FirstPrice   decimal.Decimal
	LastPrice    decimal.Decimal
	Points       int
}

// ClassifyTrend compara la primera y la última observación por fecha:
// variación = (última - primera) / primera * 100. Estrictamente mayor que la banda → INCREASE,
// estrictamente menor que -banda → DECREASE; el resto, incluida la frontera, STABLE.
// Con menos de dos puntos (o precio inicial cero) devuelve STABLE junto a InsufficientDataError.
func ClassifyTrend(obs []PriceObservation, deadband decimal.Decimal) (TrendResult, error) {
	res := TrendResult{Label: TrendStable, Points: len(obs)}
	if len(obs) < 2 {
		return res, &domain.InsufficientDataError{Metric: "trend", Points: len(obs)}
	}

	sorted := make([]PriceObservation, len(obs))
	copy(sorted, obs)
	sortObservations(sorted)

	first, last := sorted[0].Price, sorted[len(sorted)-1].Price
	res.FirstPrice, res.LastPrice = first, last
	if first.IsZero() {
		return res, &domain.InsufficientDataError{Metric: "trend", Points: len(obs)}
	}

	variation := last.Sub(first).Div(first).Mul(hundred)
	res.VariationPct = decimal.NewNullDecimal(variation.Round(2))

	band := deadband.Abs()
	switch {
	case variation.GreaterThan(band):
		res.Label = TrendIncrease
	case variation.LessThan(band.Neg()):
		res.Label = TrendDecrease
	}
	return res, nil
}

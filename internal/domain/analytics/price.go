package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

// PriceAnalysis combina estadísticas de compra y tendencia de una ventana.
type PriceAnalysis struct {
	Window Window
	Stats  PriceStats
	Trend  TrendResult
}

// AnalyzePrice agrega las compras de la ventana y clasifica su tendencia.
// Sin compras válidas devuelve InsufficientDataError. Una tendencia indefinida
// (un solo punto) no es error: queda STABLE con VariationPct inválido.
func AnalyzePrice(events []entity.PurchaseEvent, w Window, deadband decimal.Decimal) (PriceAnalysis, error) {
	obs := PriceObservations(events, w)
	stats, err := aggregateObservations(obs)
	if err != nil {
		return PriceAnalysis{Window: w}, err
	}
	trend, _ := ClassifyTrend(obs, deadband)
	return PriceAnalysis{Window: w, Stats: stats, Trend: trend}, nil
}

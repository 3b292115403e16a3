// Package analytics contiene los casos de uso de salud de inventario, estado de flota,
// precios, pronóstico de consumo y curva ABC. Leen del ERP vía repositorios read-only,
// delegan el cálculo al motor de dominio y devuelven DTOs.
package analytics

import (
	"github.com/shopspring/decimal"

	engine "github.com/jhoicas/estoque-analytics/internal/domain/analytics"
)

// StatusUndefined estado de una entidad que no pudo clasificarse dentro de un lote.
// El lote sigue: una entidad con datos inválidos no aborta el reporte.
const StatusUndefined = "UNDEFINED"

// GroupBy valores aceptados.
const (
	GroupByLocation = "location"
	GroupByCategory = "category"
)

// Settings parámetros del motor que comparten los casos de uso.
type Settings struct {
	Stock             engine.StockRules
	Deadband          decimal.Decimal
	ForecastMonths    int
	PriceWindowDays   int
	TurnoverDays      int
	ABC               engine.ABCThresholds
	Workers           int
	FleetLookbackDays int
}

// DefaultSettings valores por defecto del motor.
func DefaultSettings() Settings {
	return Settings{
		Stock:             engine.DefaultStockRules(),
		Deadband:          engine.DefaultDeadband,
		ForecastMonths:    engine.DefaultForecastMonths,
		PriceWindowDays:   180,
		TurnoverDays:      365,
		ABC:               engine.DefaultABCThresholds,
		Workers:           8,
		FleetLookbackDays: 30,
	}
}

func labels[S ~string](statuses []S) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

const (
	// DaysPerMonth aproximación de mes fijo usada para el consumo diario.
	DaysPerMonth = 30
	// DefaultForecastMonths ventana por defecto del pronóstico de consumo.
	DefaultForecastMonths = 6
)

var daysPerMonth = decimal.NewFromInt(DaysPerMonth)

// MonthlyConsumption consumo de un mes calendario ("YYYY-MM").
type MonthlyConsumption struct {
	Month    string
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

// Forecast pronóstico de agotamiento. DaysOfStock inválido y ForecastDate nil = nunca se agota.
type Forecast struct {
	Window         Window
	Months         int
	OnHand         decimal.Decimal
	TotalQuantity  decimal.Decimal
	TotalValue     decimal.Decimal
	MonthlyAverage decimal.Decimal
	DailyAverage   decimal.Decimal
	DaysOfStock    decimal.NullDecimal
	ForecastDate   *time.Time
	Breakdown      []MonthlyConsumption
}

// ForecastConsumption promedia el consumo de los últimos `months` meses calendario
// (meses sin movimiento incluidos) y proyecta la fecha de agotamiento del saldo.
// Las cantidades se toman en valor absoluto: el kardex puede traer salidas negativas.
func ForecastConsumption(events []entity.ConsumptionEvent, onHand decimal.Decimal, months int, today time.Time) Forecast {
	if months <= 0 {
		months = DefaultForecastMonths
	}
	w := MonthsWindow(today, months)

	byMonth := make(map[string]*MonthlyConsumption)
	labels := w.MonthLabels()
	breakdown := make([]MonthlyConsumption, len(labels))
	for i, l := range labels {
		breakdown[i] = MonthlyConsumption{Month: l, Quantity: decimal.Zero, Value: decimal.Zero}
		byMonth[l] = &breakdown[i]
	}

	f := Forecast{
		Window:        w,
		Months:        w.MonthsElapsed(),
		OnHand:        onHand,
		TotalQuantity: decimal.Zero,
		TotalValue:    decimal.Zero,
	}
	for _, e := range events {
		if !w.Contains(e.Date) {
			continue
		}
		qty, val := e.Quantity.Abs(), e.Value.Abs()
		f.TotalQuantity = f.TotalQuantity.Add(qty)
		f.TotalValue = f.TotalValue.Add(val)
		if m, ok := byMonth[monthLabel(e.Date)]; ok {
			m.Quantity = m.Quantity.Add(qty)
			m.Value = m.Value.Add(val)
		}
	}
	f.Breakdown = breakdown

	f.MonthlyAverage = f.TotalQuantity.Div(decimal.NewFromInt(int64(f.Months)))
	f.DailyAverage = f.MonthlyAverage.Div(daysPerMonth)

	if !f.DailyAverage.GreaterThan(decimal.Zero) {
		return f
	}
	day := civil(today)
	if !onHand.GreaterThan(decimal.Zero) {
		f.DaysOfStock = decimal.NewNullDecimal(decimal.Zero)
		f.ForecastDate = &day
		return f
	}
	days := onHand.Div(f.DailyAverage)
	f.DaysOfStock = decimal.NewNullDecimal(days.Round(2))
	exhaustion := day.AddDate(0, 0, int(days.IntPart()))
	f.ForecastDate = &exhaustion
	return f
}

package analytics

import "github.com/shopspring/decimal"

// RotationClass clasificación de giro del kardex.
type RotationClass string

const (
	RotationNoStock RotationClass = "NO_STOCK"
	RotationHigh    RotationClass = "HIGH"
	RotationLow     RotationClass = "LOW"
	RotationNormal  RotationClass = "NORMAL"
)

var (
	daysPerYear       = decimal.NewFromInt(365)
	highRotationLimit = decimal.NewFromInt(10)
	lowRotationLimit  = decimal.NewFromFloat(0.5)
)

// Turnover giro de inventario en un período.
type Turnover struct {
	PeriodDays         int
	Outflow            decimal.Decimal
	OnHand             decimal.Decimal
	Rotations          decimal.Decimal     // salidas / saldo en el período
	AnnualRotations    decimal.Decimal     // Rotations * 365 / PeriodDays
	AverageDaysInStock decimal.NullDecimal // 365 / AnnualRotations
	Class              RotationClass
}

// ComputeTurnover calcula el giro (salidas / saldo), su anualización y el tiempo medio en stock.
// Sin saldo positivo no hay giro: clase NO_STOCK.
func ComputeTurnover(outflow, onHand decimal.Decimal, periodDays int) Turnover {
	if periodDays <= 0 {
		periodDays = 365
	}
	t := Turnover{
		PeriodDays:      periodDays,
		Outflow:         outflow.Abs(),
		OnHand:          onHand,
		Rotations:       decimal.Zero,
		AnnualRotations: decimal.Zero,
		Class:           RotationNoStock,
	}
	if !onHand.GreaterThan(decimal.Zero) {
		return t
	}

	t.Rotations = t.Outflow.Div(onHand).Round(4)
	t.AnnualRotations = t.Outflow.Div(onHand).Mul(daysPerYear).Div(decimal.NewFromInt(int64(periodDays))).Round(4)
	if t.AnnualRotations.GreaterThan(decimal.Zero) {
		t.AverageDaysInStock = decimal.NewNullDecimal(daysPerYear.Div(t.AnnualRotations).Round(1))
	}

	switch {
	case t.Rotations.GreaterThan(highRotationLimit):
		t.Class = RotationHigh
	case t.Rotations.LessThan(lowRotationLimit):
		t.Class = RotationLow
	default:
		t.Class = RotationNormal
	}
	return t
}

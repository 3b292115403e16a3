package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ABCClass clase de la curva ABC.
type ABCClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"
)

// ABCThresholds cortes de participación acumulada (en %) para A y B.
type ABCThresholds struct {
	A decimal.Decimal
	B decimal.Decimal
}

// DefaultABCThresholds 80% / 95%.
var DefaultABCThresholds = ABCThresholds{A: decimal.NewFromInt(80), B: decimal.NewFromInt(95)}

// ValuedEntity entidad con su métrica de valor (ej: valor consumido en el período).
type ValuedEntity struct {
	EntityID string
	Value    decimal.Decimal
}

// ABCEntry posición de una entidad en la curva.
type ABCEntry struct {
	EntityID        string
	Rank            int
	Value           decimal.Decimal
	Share           decimal.Decimal // % del total
	CumulativeShare decimal.Decimal // % acumulado incluyendo esta entidad
	Class           ABCClass
}

// ClassifyTurnover ordena de mayor a menor valor y asigna A mientras el acumulado sea <= A,
// B mientras sea <= B y C al resto. La igualdad en el corte queda en la clase más estricta.
// Valores negativos cuentan como cero; con total cero todas las entidades son C.
// Empates de valor conservan el orden de entrada.
func ClassifyTurnover(entities []ValuedEntity, th ABCThresholds) []ABCEntry {
	entries := make([]ABCEntry, len(entities))
	total := decimal.Zero
	for i, e := range entities {
		v := decimal.Max(e.Value, decimal.Zero)
		entries[i] = ABCEntry{EntityID: e.EntityID, Value: v, Share: decimal.Zero, CumulativeShare: decimal.Zero, Class: ClassC}
		total = total.Add(v)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value.GreaterThan(entries[j].Value)
	})

	cumulative := decimal.Zero
	for i := range entries {
		entries[i].Rank = i + 1
		if total.IsZero() {
			continue
		}
		cumulative = cumulative.Add(entries[i].Value)
		cumShare := cumulative.Div(total).Mul(hundred)
		entries[i].Share = entries[i].Value.Div(total).Mul(hundred).Round(2)
		entries[i].CumulativeShare = cumShare.Round(2)

		switch {
		case cumShare.LessThanOrEqual(th.A):
			entries[i].Class = ClassA
		case cumShare.LessThanOrEqual(th.B):
			entries[i].Class = ClassB
		default:
			entries[i].Class = ClassC
		}
	}
	return entries
}

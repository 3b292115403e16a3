package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/domain"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

// StockStatus estado exclusivo de un producto (o de una ubicación).
type StockStatus string

const (
	StockNegative     StockStatus = "NEGATIVE"
	StockZero         StockStatus = "ZERO"
	StockBelowMinimum StockStatus = "BELOW_MINIMUM"
	StockAboveMaximum StockStatus = "ABOVE_MAXIMUM"
	StockNoMovement   StockStatus = "NO_MOVEMENT"
	StockNormal       StockStatus = "NORMAL"
)

// StockStatuses en orden de prioridad.
var StockStatuses = []StockStatus{
	StockNegative, StockZero, StockBelowMinimum, StockAboveMaximum, StockNoMovement, StockNormal,
}

// Priority número de prioridad: menor = más grave.
func (s StockStatus) Priority() int {
	switch s {
	case StockNegative:
		return 1
	case StockZero:
		return 2
	case StockBelowMinimum:
		return 3
	case StockAboveMaximum:
		return 4
	case StockNoMovement:
		return 5
	case StockNormal:
		return 6
	}
	return 99
}

// DefaultNoMovementDays días sin movimiento a partir de los cuales el stock se considera parado.
const DefaultNoMovementDays = 90

// StockRules parámetros del resolvedor.
type StockRules struct {
	NoMovementDays int
}

// DefaultStockRules reglas por defecto.
func DefaultStockRules() StockRules {
	return StockRules{NoMovementDays: DefaultNoMovementDays}
}

// LocationStatus estado de una ubicación, con los porcentajes informativos.
type LocationStatus struct {
	LocationID        string
	Status            StockStatus
	Quantity          decimal.NullDecimal
	MinimumPct        decimal.NullDecimal // cantidad / mínimo * 100
	OccupancyPct      decimal.NullDecimal // cantidad / máximo * 100
	DaysSinceMovement *int
	Signals           []entity.Signal
}

// StockClassification resultado por producto con el detalle de cada ubicación.
type StockClassification struct {
	entity.ClassificationResult
	Locations     []LocationStatus
	TotalQuantity decimal.NullDecimal // suma de las cantidades informadas
	TotalValue    decimal.Decimal     // suma de cantidad * costo donde ambos existen
}

// ResolveLocation evalúa las seis condiciones en orden de prioridad; gana la primera verdadera.
// Todas las condiciones quedan registradas como señales. Sin cantidad informada no se evalúan
// las condiciones que dependen de ella.
func ResolveLocation(r entity.StockRecord, ref time.Time, rules StockRules) LocationStatus {
	ls := LocationStatus{LocationID: r.LocationID, Quantity: r.Quantity}
	q := r.Quantity

	qtyDetail := "cantidad no informada"
	if q.Valid {
		qtyDetail = "cantidad=" + q.Decimal.String()
	}
	negative := q.Valid && q.Decimal.IsNegative()
	zero := q.Valid && q.Decimal.IsZero()

	belowDetail := "sin mínimo"
	below := false
	if r.Minimum.Valid {
		belowDetail = "mínimo=" + r.Minimum.Decimal.String()
		below = q.Valid && q.Decimal.LessThan(r.Minimum.Decimal)
		if q.Valid && !r.Minimum.Decimal.IsZero() {
			ls.MinimumPct = decimal.NewNullDecimal(q.Decimal.Div(r.Minimum.Decimal).Mul(hundred).Round(2))
		}
	}

	aboveDetail := "sin máximo"
	above := false
	if r.Maximum.Valid {
		aboveDetail = "máximo=" + r.Maximum.Decimal.String()
		above = q.Valid && q.Decimal.GreaterThan(r.Maximum.Decimal)
		if q.Valid && !r.Maximum.Decimal.IsZero() {
			ls.OccupancyPct = decimal.NewNullDecimal(q.Decimal.Div(r.Maximum.Decimal).Mul(hundred).Round(2))
		}
	}

	idleDetail := "sin fecha de último movimiento"
	idle := false
	if r.LastMovement != nil {
		days := daysSince(*r.LastMovement, ref)
		ls.DaysSinceMovement = &days
		idleDetail = fmt.Sprintf("días sin movimiento=%d", days)
		idle = days > rules.NoMovementDays
	}

	ls.Signals = []entity.Signal{
		{Code: string(StockNegative), Matched: negative, Detail: qtyDetail},
		{Code: string(StockZero), Matched: zero, Detail: qtyDetail},
		{Code: string(StockBelowMinimum), Matched: below, Detail: belowDetail},
		{Code: string(StockAboveMaximum), Matched: above, Detail: aboveDetail},
		{Code: string(StockNoMovement), Matched: idle, Detail: idleDetail},
	}

	ls.Status = StockNormal
	for _, s := range ls.Signals {
		if s.Matched {
			ls.Status = StockStatus(s.Code)
			break
		}
	}
	ls.Signals = append(ls.Signals, entity.Signal{Code: string(StockNormal), Matched: ls.Status == StockNormal})
	return ls
}

// ClassifyStock resuelve cada ubicación de un producto y se queda con la de mayor prioridad
// (número más bajo): una sola ubicación crítica define el estado del producto.
func ClassifyStock(records []entity.StockRecord, ref time.Time, rules StockRules) (StockClassification, error) {
	if len(records) == 0 {
		return StockClassification{}, &domain.InsufficientDataError{Metric: "stock_status", Points: 0}
	}
	productID := records[0].ProductID
	if productID == "" {
		return StockClassification{}, fmt.Errorf("registro sin producto: %w", domain.ErrInvalidInput)
	}

	res := StockClassification{
		ClassificationResult: entity.ClassificationResult{EntityID: productID},
		Locations:            make([]LocationStatus, 0, len(records)),
		TotalValue:           decimal.Zero,
	}
	worst := StockNormal
	for _, r := range records {
		if r.ProductID != productID {
			return StockClassification{}, fmt.Errorf("producto %s mezclado con %s: %w", r.ProductID, productID, domain.ErrInvalidInput)
		}
		ls := ResolveLocation(r, ref, rules)
		res.Locations = append(res.Locations, ls)
		res.Signals = append(res.Signals, entity.Signal{
			Code:    string(ls.Status),
			Matched: true,
			Detail:  "ubicación=" + r.LocationID,
		})
		if ls.Status.Priority() < worst.Priority() {
			worst = ls.Status
		}

		if r.Quantity.Valid {
			sum := r.Quantity.Decimal
			if res.TotalQuantity.Valid {
				sum = res.TotalQuantity.Decimal.Add(sum)
			}
			res.TotalQuantity = decimal.NewNullDecimal(sum)
		}
		if v, ok := r.Value(); ok {
			res.TotalValue = res.TotalValue.Add(v)
		}
	}
	res.Status = string(worst)
	res.Priority = worst.Priority()
	return res, nil
}

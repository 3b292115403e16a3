package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

// AverageCost implementa el costo promedio ponderado del saldo (servicio de dominio).
// PMM = ValorSaldo / CantidadSaldo; cero cuando no hay saldo positivo.
func AverageCost(balanceQty, balanceValue decimal.Decimal) decimal.Decimal {
	if balanceQty.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balanceValue.Div(balanceQty)
}

// LedgerEntry línea del kardex con el saldo posterior al movimiento.
type LedgerEntry struct {
	Date            time.Time
	Type            string
	Quantity        decimal.Decimal
	Value           decimal.Decimal
	BalanceQuantity decimal.Decimal
	BalanceValue    decimal.Decimal
	AverageCost     decimal.Decimal
}

// Ledger saldo corriente de un producto.
type Ledger struct {
	quantity decimal.Decimal
	value    decimal.Decimal
}

// NewLedger abre el kardex con el saldo inicial del período.
func NewLedger(openingQty, openingValue decimal.Decimal) *Ledger {
	return &Ledger{quantity: openingQty, value: openingValue}
}

// Apply suma el movimiento (con signo) al saldo y devuelve la línea resultante.
func (l *Ledger) Apply(m entity.InventoryMovement) LedgerEntry {
	l.quantity = l.quantity.Add(m.Quantity)
	l.value = l.value.Add(m.TotalValue)
	return LedgerEntry{
		Date:            m.Date,
		Type:            m.Type,
		Quantity:        m.Quantity,
		Value:           m.TotalValue,
		BalanceQuantity: l.quantity,
		BalanceValue:    l.value,
		AverageCost:     AverageCost(l.quantity, l.value),
	}
}

// Quantity saldo actual.
func (l *Ledger) Quantity() decimal.Decimal { return l.quantity }

// AverageCost PMM del saldo actual.
func (l *Ledger) AverageCost() decimal.Decimal { return AverageCost(l.quantity, l.value) }

// StockValue valoriza el saldo al PMM.
func (l *Ledger) StockValue() decimal.Decimal {
	return l.quantity.Mul(l.AverageCost())
}

// Replay ordena los movimientos por fecha y secuencia y los aplica sobre el saldo inicial.
func Replay(l *Ledger, movements []entity.InventoryMovement) []LedgerEntry {
	sorted := make([]entity.InventoryMovement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Sequence < sorted[j].Sequence
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	entries := make([]LedgerEntry, 0, len(sorted))
	for _, m := range sorted {
		entries = append(entries, l.Apply(m))
	}
	return entries
}

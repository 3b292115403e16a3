package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord representa el saldo de un producto en una ubicación (bodega/local) en un instante.
// Cantidad, mínimo y máximo son opcionales de forma independiente: ausente NO es cero.
type StockRecord struct {
	ProductID    string
	LocationID   string
	Quantity     decimal.NullDecimal // puede ser negativa
	Minimum      decimal.NullDecimal
	Maximum      decimal.NullDecimal
	LastMovement *time.Time
	UnitCost     decimal.NullDecimal
}

// StockRecordOption completa los campos opcionales de un StockRecord.
type StockRecordOption func(*StockRecord)

// NewStockRecord construye un registro con los identificadores obligatorios.
func NewStockRecord(productID, locationID string, opts ...StockRecordOption) StockRecord {
	r := StockRecord{ProductID: productID, LocationID: locationID}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func WithQuantity(q decimal.Decimal) StockRecordOption {
	return func(r *StockRecord) { r.Quantity = decimal.NewNullDecimal(q) }
}

func WithMinimum(min decimal.Decimal) StockRecordOption {
	return func(r *StockRecord) { r.Minimum = decimal.NewNullDecimal(min) }
}

func WithMaximum(max decimal.Decimal) StockRecordOption {
	return func(r *StockRecord) { r.Maximum = decimal.NewNullDecimal(max) }
}

func WithLastMovement(t time.Time) StockRecordOption {
	return func(r *StockRecord) { r.LastMovement = &t }
}

func WithUnitCost(c decimal.Decimal) StockRecordOption {
	return func(r *StockRecord) { r.UnitCost = decimal.NewNullDecimal(c) }
}

// Value devuelve cantidad * costo unitario; false si falta alguno de los dos.
func (r StockRecord) Value() (decimal.Decimal, bool) {
	if !r.Quantity.Valid || !r.UnitCost.Valid {
		return decimal.Zero, false
	}
	return r.Quantity.Decimal.Mul(r.UnitCost.Decimal), true
}

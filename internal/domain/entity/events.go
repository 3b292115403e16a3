package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseEvent representa una compra (entrada) con precio unitario y cantidad.
type PurchaseEvent struct {
	ProductID string
	Date      time.Time
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}

// NewPurchaseEvent construye un evento de compra.
func NewPurchaseEvent(productID string, date time.Time, unitPrice, quantity decimal.Decimal) PurchaseEvent {
	return PurchaseEvent{ProductID: productID, Date: date, UnitPrice: unitPrice, Quantity: quantity}
}

// ConsumptionEvent representa una salida (baja/consumo) de un producto.
type ConsumptionEvent struct {
	ProductID string
	Date      time.Time
	Quantity  decimal.Decimal
	Value     decimal.Decimal
}

// NewConsumptionEvent construye un evento de consumo.
func NewConsumptionEvent(productID string, date time.Time, quantity, value decimal.Decimal) ConsumptionEvent {
	return ConsumptionEvent{ProductID: productID, Date: date, Quantity: quantity, Value: value}
}

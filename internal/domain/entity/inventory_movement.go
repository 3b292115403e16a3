package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del kardex.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste (+/-)
)

// InventoryMovement es una línea del kardex de un producto.
// Quantity y TotalValue llevan signo: positivos en entradas, negativos en salidas.
type InventoryMovement struct {
	ProductID  string
	Sequence   int64 // orden dentro del mismo día
	Date       time.Time
	Type       string
	Quantity   decimal.Decimal
	TotalValue decimal.Decimal
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

// ProductConsumptionResult resultado crudo de salidas por producto en un período.
// Lo produce la DB; el use case lo convierte en curva ABC y giro.
type ProductConsumptionResult struct {
	ProductID    string
	Description  string
	OutflowQty   decimal.Decimal // suma de cantidades de salida (positiva)
	OutflowValue decimal.Decimal // suma del valor de salida (positiva)
	OnHand       decimal.Decimal // saldo actual sumando ubicaciones
}

// MovementRepository consultas de lectura sobre el kardex (compras, salidas, movimientos).
type MovementRepository interface {
	// ListPurchases devuelve las compras de un producto en [from, to], ordenadas por fecha y secuencia.
	ListPurchases(ctx context.Context, productID string, from, to time.Time) ([]entity.PurchaseEvent, error)
	// ListConsumptions devuelve las salidas de un producto en [from, to].
	ListConsumptions(ctx context.Context, productID string, from, to time.Time) ([]entity.ConsumptionEvent, error)
	// ListMovements devuelve el kardex completo de un producto en [from, to].
	ListMovements(ctx context.Context, productID string, from, to time.Time) ([]entity.InventoryMovement, error)
	// OpeningBalance devuelve cantidad y valor del saldo antes de `at`.
	OpeningBalance(ctx context.Context, productID string, at time.Time) (qty, value decimal.Decimal, err error)
	// ConsumptionByProduct agrega las salidas de todos los productos en [from, to].
	ConsumptionByProduct(ctx context.Context, from, to time.Time) ([]ProductConsumptionResult, error)
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
	"github.com/jhoicas/estoque-analytics/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo lee el kardex (inventory_movements). Cantidad y valor vienen con signo.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func (r *MovementRepo) ListPurchases(ctx context.Context, productID string, from, to time.Time) ([]entity.PurchaseEvent, error) {
	const query = `
		SELECT m.product_id, m.moved_at,
		       CASE WHEN m.quantity <> 0 THEN m.total_value / m.quantity ELSE 0 END AS unit_price,
		       m.quantity
		FROM inventory_movements m
		WHERE m.product_id = $1 AND m.type = 'IN' AND m.moved_at BETWEEN $2 AND $3
		ORDER BY m.moved_at, m.seq`
	rows, err := r.q.Query(ctx, query, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	list, err := collect(rows, func(row pgx.Row) (entity.PurchaseEvent, error) {
		var e entity.PurchaseEvent
		err := row.Scan(&e.ProductID, &e.Date, &e.UnitPrice, &e.Quantity)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan purchase: %w", err)
	}
	return list, nil
}

func (r *MovementRepo) ListConsumptions(ctx context.Context, productID string, from, to time.Time) ([]entity.ConsumptionEvent, error) {
	const query = `
		SELECT m.product_id, m.moved_at, ABS(m.quantity), ABS(m.total_value)
		FROM inventory_movements m
		WHERE m.product_id = $1 AND m.type = 'OUT' AND m.moved_at BETWEEN $2 AND $3
		ORDER BY m.moved_at, m.seq`
	rows, err := r.q.Query(ctx, query, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}
	list, err := collect(rows, func(row pgx.Row) (entity.ConsumptionEvent, error) {
		var e entity.ConsumptionEvent
		err := row.Scan(&e.ProductID, &e.Date, &e.Quantity, &e.Value)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan consumption: %w", err)
	}
	return list, nil
}

func (r *MovementRepo) ListMovements(ctx context.Context, productID string, from, to time.Time) ([]entity.InventoryMovement, error) {
	const query = `
		SELECT m.product_id, m.seq, m.moved_at, m.type, m.quantity, m.total_value
		FROM inventory_movements m
		WHERE m.product_id = $1 AND m.moved_at BETWEEN $2 AND $3
		ORDER BY m.moved_at, m.seq`
	rows, err := r.q.Query(ctx, query, productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	list, err := collect(rows, func(row pgx.Row) (entity.InventoryMovement, error) {
		var m entity.InventoryMovement
		err := row.Scan(&m.ProductID, &m.Sequence, &m.Date, &m.Type, &m.Quantity, &m.TotalValue)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan movement: %w", err)
	}
	return list, nil
}

func (r *MovementRepo) OpeningBalance(ctx context.Context, productID string, at time.Time) (decimal.Decimal, decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(m.quantity), 0), COALESCE(SUM(m.total_value), 0)
		FROM inventory_movements m
		WHERE m.product_id = $1 AND m.moved_at < $2`
	var qty, value decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID, at).Scan(&qty, &value); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("opening balance: %w", err)
	}
	return qty, value, nil
}

func (r *MovementRepo) ConsumptionByProduct(ctx context.Context, from, to time.Time) ([]repository.ProductConsumptionResult, error) {
	const query = `
		WITH outflow AS (
			SELECT m.product_id, SUM(ABS(m.quantity)) AS qty, SUM(ABS(m.total_value)) AS value
			FROM inventory_movements m
			WHERE m.type = 'OUT' AND m.moved_at BETWEEN $1 AND $2
			GROUP BY m.product_id
		), on_hand AS (
			SELECT s.product_id, SUM(s.quantity) AS qty
			FROM stock_levels s
			GROUP BY s.product_id
		)
		SELECT p.id, p.description,
		       COALESCE(o.qty, 0), COALESCE(o.value, 0), COALESCE(h.qty, 0)
		FROM products p
		LEFT JOIN outflow o ON o.product_id = p.id
		LEFT JOIN on_hand h ON h.product_id = p.id
		ORDER BY p.id`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("consumption by product: %w", err)
	}
	list, err := collect(rows, func(row pgx.Row) (repository.ProductConsumptionResult, error) {
		var c repository.ProductConsumptionResult
		err := row.Scan(&c.ProductID, &c.Description, &c.OutflowQty, &c.OutflowValue, &c.OnHand)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan consumption by product: %w", err)
	}
	return list, nil
}

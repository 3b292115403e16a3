package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
	"github.com/jhoicas/estoque-analytics/internal/domain/repository"
)

var _ repository.StockSnapshotRepository = (*StockSnapshotRepo)(nil)

// StockSnapshotRepo implementación de StockSnapshotRepository sobre PostgreSQL.
// Lee stock_levels: una fila por (producto, ubicación) con umbrales opcionales.
type StockSnapshotRepo struct {
	q Querier
}

// NewStockSnapshotRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockSnapshotRepository(q Querier) *StockSnapshotRepo {
	return &StockSnapshotRepo{q: q}
}

const stockLevelColumns = `
	SELECT s.product_id, s.location_id, s.quantity, s.min_qty, s.max_qty, s.last_movement_at, s.unit_cost
	FROM stock_levels s`

func (r *StockSnapshotRepo) ListStockRecords(ctx context.Context, filter repository.StockFilter) ([]entity.StockRecord, error) {
	query := stockLevelColumns + `
		WHERE ($1 = '' OR s.location_id = $1)
		  AND (cardinality($2::text[]) = 0 OR s.product_id = ANY($2::text[]))
		ORDER BY s.product_id, s.location_id`
	rows, err := r.q.Query(ctx, query, filter.LocationID, nonNil(filter.ProductIDs))
	if err != nil {
		return nil, fmt.Errorf("list stock records: %w", err)
	}
	list, err := collect(rows, scanStockRecord)
	if err != nil {
		return nil, fmt.Errorf("scan stock record: %w", err)
	}
	return list, nil
}

func (r *StockSnapshotRepo) ListByProduct(ctx context.Context, productID string) ([]entity.StockRecord, error) {
	query := stockLevelColumns + `
		WHERE s.product_id = $1
		ORDER BY s.location_id`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	list, err := collect(rows, scanStockRecord)
	if err != nil {
		return nil, fmt.Errorf("scan stock record: %w", err)
	}
	return list, nil
}

// scanStockRecord conserva los NULL: cantidad, mínimo, máximo y costo son NullDecimal.
func scanStockRecord(row pgx.Row) (entity.StockRecord, error) {
	var rec entity.StockRecord
	err := row.Scan(
		&rec.ProductID, &rec.LocationID, &rec.Quantity, &rec.Minimum, &rec.Maximum, &rec.LastMovement, &rec.UnitCost,
	)
	return rec, err
}

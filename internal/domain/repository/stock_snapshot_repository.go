package repository

import (
	"context"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

// StockFilter filtros opcionales de la foto de stock.
type StockFilter struct {
	LocationID string   // vacío = todas las ubicaciones
	ProductIDs []string // vacío = todos los productos
}

// StockSnapshotRepository lee el saldo por producto y ubicación desde el ERP.
// Las implementaciones son read-only (no modifican datos).
type StockSnapshotRepository interface {
	// ListStockRecords devuelve un registro por (producto, ubicación), ordenado por producto.
	ListStockRecords(ctx context.Context, filter StockFilter) ([]entity.StockRecord, error)
	// ListByProduct devuelve las ubicaciones de un producto. Vacío si no existe.
	ListByProduct(ctx context.Context, productID string) ([]entity.StockRecord, error)
}

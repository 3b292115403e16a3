package repository

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

// FleetRepository lee activos, agenda de servicios y órdenes de mantenimiento.
type FleetRepository interface {
	ListAssets(ctx context.Context) ([]entity.Asset, error)
	// GetAsset devuelve nil, nil si el activo no existe.
	GetAsset(ctx context.Context, assetID string) (*entity.Asset, error)
	// ListSchedules devuelve intervalos con inicio previsto desde `since` o aún sin terminar.
	// assetID vacío = todos los activos.
	ListSchedules(ctx context.Context, assetID string, since time.Time) ([]entity.ScheduleInterval, error)
	// ListMaintenance devuelve órdenes abiertas o cerradas desde `since`. assetID vacío = todas.
	ListMaintenance(ctx context.Context, assetID string, since time.Time) ([]entity.MaintenanceInterval, error)
}

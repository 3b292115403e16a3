package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
	"github.com/jhoicas/estoque-analytics/internal/domain/repository"
)

var _ repository.FleetRepository = (*FleetRepo)(nil)

// FleetRepo lee assets, service_orders y maintenance_orders.
type FleetRepo struct {
	q Querier
}

// NewFleetRepository construye el adaptador.
func NewFleetRepository(q Querier) *FleetRepo {
	return &FleetRepo{q: q}
}

const assetColumns = `SELECT a.id, a.plate, a.description, a.category, a.blocked, a.active FROM assets a`

func scanAsset(row pgx.Row) (entity.Asset, error) {
	var a entity.Asset
	err := row.Scan(&a.ID, &a.Plate, &a.Description, &a.Category, &a.Blocked, &a.Active)
	return a, err
}

func (r *FleetRepo) ListAssets(ctx context.Context) ([]entity.Asset, error) {
	rows, err := r.q.Query(ctx, assetColumns+` ORDER BY a.id`)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	list, err := collect(rows, scanAsset)
	if err != nil {
		return nil, fmt.Errorf("scan asset: %w", err)
	}
	return list, nil
}

func (r *FleetRepo) GetAsset(ctx context.Context, assetID string) (*entity.Asset, error) {
	a, err := scanAsset(r.q.QueryRow(ctx, assetColumns+` WHERE a.id = $1`, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

func (r *FleetRepo) ListSchedules(ctx context.Context, assetID string, since time.Time) ([]entity.ScheduleInterval, error) {
	const query = `
		SELECT o.id, o.asset_id, o.intended_start, o.execution_start, o.execution_end,
		       o.start_hour, o.end_hour, o.billable, o.rework
		FROM service_orders o
		WHERE ($1 = '' OR o.asset_id = $1)
		  AND (o.intended_start >= $2 OR o.execution_end IS NULL)
		ORDER BY o.asset_id, o.intended_start`
	rows, err := r.q.Query(ctx, query, assetID, since)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	list, err := collect(rows, func(row pgx.Row) (entity.ScheduleInterval, error) {
		var s entity.ScheduleInterval
		err := row.Scan(&s.ID, &s.AssetID, &s.IntendedStart, &s.ExecutionStart, &s.ExecutionEnd,
			&s.StartHour, &s.EndHour, &s.Billable, &s.Rework)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan schedule: %w", err)
	}
	return list, nil
}

func (r *FleetRepo) ListMaintenance(ctx context.Context, assetID string, since time.Time) ([]entity.MaintenanceInterval, error) {
	const query = `
		SELECT m.id, m.asset_id, m.status, m.start_date, m.end_date
		FROM maintenance_orders m
		WHERE ($1 = '' OR m.asset_id = $1)
		  AND (m.end_date IS NULL OR m.end_date >= $2)
		ORDER BY m.asset_id, m.start_date`
	rows, err := r.q.Query(ctx, query, assetID, since)
	if err != nil {
		return nil, fmt.Errorf("list maintenance: %w", err)
	}
	list, err := collect(rows, func(row pgx.Row) (entity.MaintenanceInterval, error) {
		var m entity.MaintenanceInterval
		err := row.Scan(&m.ID, &m.AssetID, &m.Status, &m.StartDate, &m.EndDate)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan maintenance: %w", err)
	}
	return list, nil
}

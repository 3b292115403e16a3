package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/application/dto"
	"github.com/jhoicas/estoque-analytics/internal/application/ports"
	"github.com/jhoicas/estoque-analytics/internal/domain"
	engine "github.com/jhoicas/estoque-analytics/internal/domain/analytics"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
	"github.com/jhoicas/estoque-analytics/internal/domain/repository"
	"github.com/jhoicas/estoque-analytics/pkg/logger"
)

// FleetStatusUseCase resuelve el estado de cada activo en un instante de referencia.
// Solo se consideran intervalos que tocan [referencia - lookback, +∞).
type FleetStatusUseCase struct {
	repo     repository.FleetRepository
	resolver *engine.FleetResolver
	metrics  ports.EvaluationRecorder
	log      *logger.Logger
	workers  int
	lookback int
}

// NewFleetStatusUseCase construye el caso de uso. resolver nil usa la convención de cancelación por defecto.
func NewFleetStatusUseCase(
	repo repository.FleetRepository,
	resolver *engine.FleetResolver,
	metrics ports.EvaluationRecorder,
	log *logger.Logger,
	settings Settings,
) *FleetStatusUseCase {
	if resolver == nil {
		resolver = engine.NewFleetResolver(nil)
	}
	return &FleetStatusUseCase{
		repo:     repo,
		resolver: resolver,
		metrics:  metrics,
		log:      log.Component("fleet_status"),
		workers:  settings.Workers,
		lookback: settings.FleetLookbackDays,
	}
}

type fleetOutcome struct {
	asset entity.Asset
	res   engine.FleetClassification
	err   error
}

// Evaluate clasifica toda la flota en `ref`. group_by=category agrega un resumen por categoría.
func (uc *FleetStatusUseCase) Evaluate(ctx context.Context, groupBy string, ref time.Time) (*dto.FleetStatusDTO, error) {
	if groupBy != "" && groupBy != GroupByCategory {
		return nil, fmt.Errorf("group_by %q: %w", groupBy, domain.ErrInvalidInput)
	}
	start := time.Now()
	since := ref.AddDate(0, 0, -uc.lookback)

	assets, err := uc.repo.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fleet status: %w", err)
	}
	schedules, err := uc.repo.ListSchedules(ctx, "", since)
	if err != nil {
		return nil, fmt.Errorf("fleet status: %w", err)
	}
	maintenance, err := uc.repo.ListMaintenance(ctx, "", since)
	if err != nil {
		return nil, fmt.Errorf("fleet status: %w", err)
	}

	inputs := make([]engine.FleetInput, len(assets))
	byAsset := make(map[string]*engine.FleetInput, len(assets))
	for i, a := range assets {
		inputs[i] = engine.FleetInput{AssetID: a.ID, Blocked: a.Inoperative(), Reference: ref}
		byAsset[a.ID] = &inputs[i]
	}
	orphans := 0
	for _, s := range schedules {
		in, ok := byAsset[s.AssetID]
		if !ok {
			orphans++
			continue
		}
		if engine.IntervalsOverlap(&s.IntendedStart, s.ExecutionEnd, &since, nil) {
			in.Schedules = append(in.Schedules, s)
		}
	}
	for _, m := range maintenance {
		in, ok := byAsset[m.AssetID]
		if !ok {
			orphans++
			continue
		}
		if engine.IntervalsOverlap(m.StartDate, m.EndDate, &since, nil) {
			in.Maintenance = append(in.Maintenance, m)
		}
	}
	if orphans > 0 {
		uc.log.Debug().Int("intervals", orphans).Msg("intervalos de activos desconocidos ignorados")
	}

	outcomes, err := evaluateAll(ctx, uc.workers, inputs, func(in engine.FleetInput) fleetOutcome {
		res, err := uc.resolver.Classify(in)
		return fleetOutcome{res: res, err: err}
	})
	if err != nil {
		return nil, fmt.Errorf("fleet status: %w", err)
	}

	report := &dto.FleetStatusDTO{
		Reference: ref,
		GroupBy:   groupBy,
		Items:     make([]dto.FleetClassificationDTO, len(outcomes)),
	}
	items := make([]engine.RollupItem, len(outcomes))
	for i, out := range outcomes {
		asset := assets[i]
		partition := ""
		if groupBy == GroupByCategory {
			partition = asset.Category
		}
		if out.err != nil {
			uc.log.Warn().Err(out.err).Str("asset_id", asset.ID).Msg("activo sin clasificación")
			report.Items[i] = dto.FleetClassificationDTO{
				AssetID: asset.ID, Plate: asset.Plate, Category: asset.Category,
				Status: StatusUndefined, Error: out.err.Error(),
			}
			items[i] = engine.RollupItem{Partition: partition, Status: StatusUndefined}
			uc.metrics.CountStatus("fleet", StatusUndefined)
			continue
		}
		report.Items[i] = toFleetDTO(asset, out.res)
		items[i] = engine.RollupItem{
			Partition: partition,
			Status:    out.res.Status,
			Sums:      map[string]decimal.Decimal{"active_intervals": decimal.NewFromInt(int64(out.res.ActiveIntervals))},
		}
		uc.metrics.CountStatus("fleet", out.res.Status)
	}

	rollup := engine.RollupResults(items, labels(engine.FleetStatuses))
	report.Summary = toGroupDTO(rollup.Overall)
	if groupBy == GroupByCategory {
		report.Groups = toGroupDTOs(rollup.Groups)
	}

	elapsed := time.Since(start)
	uc.metrics.ObserveBatch("fleet", elapsed, len(assets))
	uc.log.Info().Int("assets", len(assets)).Int("schedules", len(schedules)).Dur("elapsed", elapsed).Msg("estado de flota evaluado")
	return report, nil
}

// GetAsset clasifica un activo. Un intervalo inválido se propaga como *domain.InvalidIntervalError.
func (uc *FleetStatusUseCase) GetAsset(ctx context.Context, assetID string, ref time.Time) (*dto.FleetClassificationDTO, error) {
	asset, err := uc.repo.GetAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("fleet asset: %w", err)
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	since := ref.AddDate(0, 0, -uc.lookback)
	schedules, err := uc.repo.ListSchedules(ctx, assetID, since)
	if err != nil {
		return nil, fmt.Errorf("fleet asset: %w", err)
	}
	maintenance, err := uc.repo.ListMaintenance(ctx, assetID, since)
	if err != nil {
		return nil, fmt.Errorf("fleet asset: %w", err)
	}

	res, err := uc.resolver.Classify(engine.FleetInput{
		AssetID:     asset.ID,
		Blocked:     asset.Inoperative(),
		Schedules:   schedules,
		Maintenance: maintenance,
		Reference:   ref,
	})
	if err != nil {
		return nil, err
	}
	out := toFleetDTO(*asset, res)
	return &out, nil
}

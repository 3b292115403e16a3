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
	"github.com/jhoicas/estoque-analytics/internal/domain/repository"
	"github.com/jhoicas/estoque-analytics/pkg/logger"
)

const abcKeyPrefix = "abc:"

// TurnoverUseCase arma la curva ABC por valor consumido y el giro de cada producto.
type TurnoverUseCase struct {
	movRepo    repository.MovementRepository
	cache      ports.ReportCache
	metrics    ports.EvaluationRecorder
	log        *logger.Logger
	thresholds engine.ABCThresholds
	days       int
}

// NewTurnoverUseCase construye el caso de uso.
func NewTurnoverUseCase(
	movRepo repository.MovementRepository,
	cache ports.ReportCache,
	metrics ports.EvaluationRecorder,
	log *logger.Logger,
	settings Settings,
) *TurnoverUseCase {
	return &TurnoverUseCase{
		movRepo:    movRepo,
		cache:      cache,
		metrics:    metrics,
		log:        log.Component("turnover"),
		thresholds: settings.ABC,
		days:       settings.TurnoverDays,
	}
}

// ABC clasifica los productos por valor de salida en los últimos `days` días (0 = configuración).
func (uc *TurnoverUseCase) ABC(ctx context.Context, days int, ref time.Time) (*dto.ABCReportDTO, error) {
	if days < 0 {
		return nil, domain.ErrInvalidInput
	}
	if days == 0 {
		days = uc.days
	}

	key := fmt.Sprintf("%s%d:%s", abcKeyPrefix, days, ref.Format("2006-01-02"))
	var cached dto.ABCReportDTO
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("cache no disponible, se recalcula")
	} else if hit {
		return &cached, nil
	}

	start := time.Now()
	w := engine.RollingWindow(ref, days)
	rows, err := uc.movRepo.ConsumptionByProduct(ctx, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("abc: %w", err)
	}

	valued := make([]engine.ValuedEntity, len(rows))
	byID := make(map[string]repository.ProductConsumptionResult, len(rows))
	for i, r := range rows {
		valued[i] = engine.ValuedEntity{EntityID: r.ProductID, Value: r.OutflowValue}
		byID[r.ProductID] = r
	}
	entries := engine.ClassifyTurnover(valued, uc.thresholds)

	report := &dto.ABCReportDTO{Window: toWindowDTO(w), Items: make([]dto.ABCEntryDTO, len(entries))}
	items := make([]engine.RollupItem, len(entries))
	for i, e := range entries {
		row := byID[e.EntityID]
		report.Items[i] = dto.ABCEntryDTO{
			ProductID:       e.EntityID,
			Description:     row.Description,
			Rank:            e.Rank,
			Value:           e.Value,
			Share:           e.Share,
			CumulativeShare: e.CumulativeShare,
			Class:           string(e.Class),
			Turnover:        toTurnoverDTO(engine.ComputeTurnover(row.OutflowQty, row.OnHand, days)),
		}
		items[i] = engine.RollupItem{Status: string(e.Class), Sums: map[string]decimal.Decimal{"value": e.Value}}
		uc.metrics.CountStatus("abc", string(e.Class))
	}
	abcLabels := labels([]engine.ABCClass{engine.ClassA, engine.ClassB, engine.ClassC})
	report.Summary = toGroupDTO(engine.RollupResults(items, abcLabels).Overall)

	elapsed := time.Since(start)
	uc.metrics.ObserveBatch("abc", elapsed, len(entries))
	uc.log.Info().Int("products", len(entries)).Int("days", days).Dur("elapsed", elapsed).Msg("curva ABC calculada")

	if err := uc.cache.Set(ctx, key, report); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear la curva ABC")
	}
	return report, nil
}

// InvalidateCache descarta las curvas cacheadas.
func (uc *TurnoverUseCase) InvalidateCache(ctx context.Context) error {
	return uc.cache.InvalidatePrefix(ctx, abcKeyPrefix)
}

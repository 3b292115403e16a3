package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/application/dto"
	"github.com/jhoicas/estoque-analytics/internal/application/ports"
	"github.com/jhoicas/estoque-analytics/internal/domain"
	engine "github.com/jhoicas/estoque-analytics/internal/domain/analytics"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
	"github.com/jhoicas/estoque-analytics/internal/domain/repository"
	"github.com/jhoicas/estoque-analytics/pkg/logger"
)

const stockHealthKeyPrefix = "stock-health:"

// StockHealthUseCase clasifica todos los productos (peor ubicación gana) y consolida para el tablero.
//
// Fuente de datos: StockSnapshotRepository (read-only). El resultado del día se cachea:
// NO_MOVEMENT depende solo de la fecha de referencia, no de la hora.
type StockHealthUseCase struct {
	repo    repository.StockSnapshotRepository
	cache   ports.ReportCache
	metrics ports.EvaluationRecorder
	log     *logger.Logger
	rules   engine.StockRules
	workers int
}

// NewStockHealthUseCase construye el caso de uso.
func NewStockHealthUseCase(
	repo repository.StockSnapshotRepository,
	cache ports.ReportCache,
	metrics ports.EvaluationRecorder,
	log *logger.Logger,
	settings Settings,
) *StockHealthUseCase {
	return &StockHealthUseCase{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		log:     log.Component("stock_health"),
		rules:   settings.Stock,
		workers: settings.Workers,
	}
}

type stockOutcome struct {
	productID string
	res       engine.StockClassification
	err       error
}

// Evaluate clasifica los productos del filtro en paralelo y arma el consolidado.
// Con group_by=location agrega además un resumen por ubicación (estado propio de cada una).
func (uc *StockHealthUseCase) Evaluate(ctx context.Context, q dto.StockHealthQuery, ref time.Time) (*dto.StockHealthDTO, error) {
	if q.GroupBy != "" && q.GroupBy != GroupByLocation {
		return nil, fmt.Errorf("group_by %q: %w", q.GroupBy, domain.ErrInvalidInput)
	}

	key := fmt.Sprintf("%s%s:%s:%s", stockHealthKeyPrefix, q.LocationID, q.GroupBy, ref.Format("2006-01-02"))
	var cached dto.StockHealthDTO
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("cache no disponible, se recalcula")
	} else if hit {
		return &cached, nil
	}

	start := time.Now()
	records, err := uc.repo.ListStockRecords(ctx, repository.StockFilter{LocationID: q.LocationID})
	if err != nil {
		return nil, fmt.Errorf("stock health: %w", err)
	}
	groups := groupByProduct(records)

	outcomes, err := evaluateAll(ctx, uc.workers, groups, func(g []entity.StockRecord) stockOutcome {
		res, err := engine.ClassifyStock(g, ref, uc.rules)
		return stockOutcome{productID: g[0].ProductID, res: res, err: err}
	})
	if err != nil {
		return nil, fmt.Errorf("stock health: %w", err)
	}

	report := &dto.StockHealthDTO{
		ReportID:      uuid.NewString(),
		ReferenceDate: ref,
		GroupBy:       q.GroupBy,
		Items:         make([]dto.StockClassificationDTO, len(outcomes)),
	}
	productItems := make([]engine.RollupItem, 0, len(outcomes))
	var locationItems []engine.RollupItem

	for i, out := range outcomes {
		if out.err != nil {
			uc.log.Warn().Err(out.err).Str("product_id", out.productID).Msg("producto sin clasificación")
			report.Items[i] = dto.StockClassificationDTO{ProductID: out.productID, Status: StatusUndefined, Error: out.err.Error()}
			productItems = append(productItems, engine.RollupItem{Status: StatusUndefined})
			uc.metrics.CountStatus("stock", StatusUndefined)
			continue
		}

		report.Items[i] = toStockDTO(out.res)
		uc.metrics.CountStatus("stock", out.res.Status)
		productItems = append(productItems, engine.RollupItem{Status: out.res.Status, Sums: productSums(out.res)})
		if q.GroupBy == GroupByLocation {
			for _, loc := range out.res.Locations {
				locationItems = append(locationItems, engine.RollupItem{
					Partition: loc.LocationID,
					Status:    string(loc.Status),
					Sums:      quantitySum(loc.Quantity),
				})
			}
		}
	}

	stockLabels := labels(engine.StockStatuses)
	report.Summary = toGroupDTO(engine.RollupResults(productItems, stockLabels).Overall)
	if q.GroupBy == GroupByLocation {
		report.Groups = toGroupDTOs(engine.RollupResults(locationItems, stockLabels).Groups)
	}

	elapsed := time.Since(start)
	uc.metrics.ObserveBatch("stock", elapsed, len(outcomes))
	uc.log.Info().Int("products", len(outcomes)).Int("records", len(records)).Dur("elapsed", elapsed).Msg("salud de inventario evaluada")

	if err := uc.cache.Set(ctx, key, report); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear el consolidado")
	}
	return report, nil
}

// GetProduct clasifica un solo producto. Sin ubicaciones devuelve ErrNotFound.
func (uc *StockHealthUseCase) GetProduct(ctx context.Context, productID string, ref time.Time) (*dto.StockClassificationDTO, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	records, err := uc.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("stock product: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	res, err := engine.ClassifyStock(records, ref, uc.rules)
	if err != nil {
		return nil, err
	}
	out := toStockDTO(res)
	return &out, nil
}

// InvalidateCache descarta los consolidados cacheados.
func (uc *StockHealthUseCase) InvalidateCache(ctx context.Context) error {
	return uc.cache.InvalidatePrefix(ctx, stockHealthKeyPrefix)
}

// groupByProduct agrupa los registros por producto conservando el orden de llegada.
func groupByProduct(records []entity.StockRecord) [][]entity.StockRecord {
	index := make(map[string]int)
	var groups [][]entity.StockRecord
	for _, r := range records {
		i, ok := index[r.ProductID]
		if !ok {
			i = len(groups)
			index[r.ProductID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}

func productSums(res engine.StockClassification) map[string]decimal.Decimal {
	sums := quantitySum(res.TotalQuantity)
	sums["value"] = res.TotalValue
	return sums
}

func quantitySum(q decimal.NullDecimal) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal, 2)
	if q.Valid {
		sums["quantity"] = q.Decimal
	}
	return sums
}

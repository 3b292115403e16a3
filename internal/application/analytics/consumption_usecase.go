package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/application/dto"
	"github.com/jhoicas/estoque-analytics/internal/domain"
	engine "github.com/jhoicas/estoque-analytics/internal/domain/analytics"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
	"github.com/jhoicas/estoque-analytics/internal/domain/inventory"
	"github.com/jhoicas/estoque-analytics/internal/domain/repository"
)

// ConsumptionUseCase pronostica el agotamiento de un producto y valoriza su saldo al PMM del kardex.
type ConsumptionUseCase struct {
	stockRepo repository.StockSnapshotRepository
	movRepo   repository.MovementRepository
	months    int
}

// NewConsumptionUseCase construye el caso de uso.
func NewConsumptionUseCase(
	stockRepo repository.StockSnapshotRepository,
	movRepo repository.MovementRepository,
	settings Settings,
) *ConsumptionUseCase {
	return &ConsumptionUseCase{stockRepo: stockRepo, movRepo: movRepo, months: settings.ForecastMonths}
}

// Forecast arma el pronóstico de los últimos `months` meses (0 = configuración).
//
// Tres lecturas en paralelo:
//  1. ListConsumptions(ventana)             → promedio mensual y desglose
//  2. OpeningBalance + ListMovements         → kardex con PMM
//  3. ListByProduct                          → saldo actual (suma de ubicaciones)
func (uc *ConsumptionUseCase) Forecast(ctx context.Context, productID string, months int, today time.Time) (*dto.ConsumptionForecastDTO, error) {
	if productID == "" || months < 0 {
		return nil, domain.ErrInvalidInput
	}
	if months == 0 {
		months = uc.months
	}
	w := engine.MonthsWindow(today, months)

	// ── Goroutines para paralelizar las lecturas ──────────────────────────────
	type consumptionResult struct {
		events []entity.ConsumptionEvent
		err    error
	}
	type ledgerResult struct {
		ledger *inventory.Ledger
		err    error
	}
	type stockResult struct {
		records []entity.StockRecord
		err     error
	}

	consCh := make(chan consumptionResult, 1)
	ledgerCh := make(chan ledgerResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		events, err := uc.movRepo.ListConsumptions(ctx, productID, w.Start, w.End)
		consCh <- consumptionResult{events, err}
	}()
	go func() {
		qty, value, err := uc.movRepo.OpeningBalance(ctx, productID, w.Start)
		if err != nil {
			ledgerCh <- ledgerResult{err: err}
			return
		}
		movements, err := uc.movRepo.ListMovements(ctx, productID, w.Start, w.End)
		if err != nil {
			ledgerCh <- ledgerResult{err: err}
			return
		}
		ledger := inventory.NewLedger(qty, value)
		inventory.Replay(ledger, movements)
		ledgerCh <- ledgerResult{ledger: ledger}
	}()
	go func() {
		records, err := uc.stockRepo.ListByProduct(ctx, productID)
		stockCh <- stockResult{records, err}
	}()

	cons, led, stock := <-consCh, <-ledgerCh, <-stockCh
	for _, err := range []error{cons.err, led.err, stock.err} {
		if err != nil {
			return nil, fmt.Errorf("consumption forecast: %w", err)
		}
	}
	if len(stock.records) == 0 {
		return nil, domain.ErrNotFound
	}

	onHand := decimal.Zero
	for _, r := range stock.records {
		if r.Quantity.Valid {
			onHand = onHand.Add(r.Quantity.Decimal)
		}
	}

	f := engine.ForecastConsumption(cons.events, onHand, months, today)
	turnover := engine.ComputeTurnover(f.TotalQuantity, onHand, engine.DaysBetween(w.Start, w.End))
	averageCost := led.ledger.AverageCost()

	out := &dto.ConsumptionForecastDTO{
		ProductID:      productID,
		Window:         toWindowDTO(f.Window),
		Months:         f.Months,
		OnHand:         onHand,
		TotalQuantity:  f.TotalQuantity,
		TotalValue:     f.TotalValue,
		MonthlyAverage: f.MonthlyAverage.Round(4),
		DailyAverage:   f.DailyAverage.Round(4),
		DaysOfStock:    nullable(f.DaysOfStock),
		AverageCost:    averageCost.Round(4),
		StockValue:     onHand.Mul(averageCost).Round(2),
		Breakdown:      make([]dto.MonthlyConsumptionDTO, len(f.Breakdown)),
		Turnover:       toTurnoverDTO(turnover),
	}
	if f.ForecastDate != nil {
		out.ForecastDate = ptr(f.ForecastDate.Format("2006-01-02"))
	}
	for i, m := range f.Breakdown {
		out.Breakdown[i] = dto.MonthlyConsumptionDTO{Month: m.Month, Quantity: m.Quantity, Value: m.Value}
	}
	return out, nil
}

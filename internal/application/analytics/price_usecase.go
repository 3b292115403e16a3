package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/application/dto"
	"github.com/jhoicas/estoque-analytics/internal/domain"
	engine "github.com/jhoicas/estoque-analytics/internal/domain/analytics"
	"github.com/jhoicas/estoque-analytics/internal/domain/repository"
)

// PriceUseCase analiza las compras de un producto: promedio ponderado, extremos y tendencia.
type PriceUseCase struct {
	movRepo    repository.MovementRepository
	deadband   decimal.Decimal
	windowDays int
}

// NewPriceUseCase construye el caso de uso.
func NewPriceUseCase(movRepo repository.MovementRepository, settings Settings) *PriceUseCase {
	return &PriceUseCase{movRepo: movRepo, deadband: settings.Deadband, windowDays: settings.PriceWindowDays}
}

// Analyze calcula el análisis de precio de los últimos `days` días (0 = configuración).
// Sin compras en la ventana responde HasData=false con los agregados en null.
func (uc *PriceUseCase) Analyze(ctx context.Context, productID string, days int, ref time.Time) (*dto.PriceAnalysisDTO, error) {
	if productID == "" || days < 0 {
		return nil, domain.ErrInvalidInput
	}
	if days == 0 {
		days = uc.windowDays
	}
	w := engine.RollingWindow(ref, days)

	events, err := uc.movRepo.ListPurchases(ctx, productID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("price analysis: %w", err)
	}

	out := &dto.PriceAnalysisDTO{
		ProductID:  productID,
		Window:     toWindowDTO(w),
		TrendLabel: string(engine.TrendStable),
	}
	res, err := engine.AnalyzePrice(events, w, uc.deadband)
	if errors.Is(err, domain.ErrInsufficientData) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	s := res.Stats
	lastAt := s.Last.Date
	out.HasData = true
	out.Purchases = s.Count
	out.WeightedAverage = ptr(s.WeightedAverage.Round(4))
	out.MinPrice = ptr(s.Min)
	out.MaxPrice = ptr(s.Max)
	out.LastPrice = ptr(s.Last.Price)
	out.LastPurchaseAt = &lastAt
	out.TrendLabel = string(res.Trend.Label)
	out.VariationPct = nullable(res.Trend.VariationPct)
	return out, nil
}

func ptr[T any](v T) *T { return &v }

package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-analytics/internal/application/dto"
	"github.com/jhoicas/estoque-analytics/internal/application/ports"
	"github.com/jhoicas/estoque-analytics/internal/domain"
)

// ReportUseCase exporta el consolidado de stock en los formatos registrados (pdf, xlsx).
type ReportUseCase struct {
	stock     *StockHealthUseCase
	renderers map[string]ports.StockReportRenderer
}

// NewReportUseCase construye el caso de uso con un renderer por extensión.
func NewReportUseCase(stock *StockHealthUseCase, renderers ...ports.StockReportRenderer) *ReportUseCase {
	byExt := make(map[string]ports.StockReportRenderer, len(renderers))
	for _, r := range renderers {
		byExt[r.Extension()] = r
	}
	return &ReportUseCase{stock: stock, renderers: byExt}
}

// ReportFile documento generado.
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StockHealth genera el reporte de salud de inventario en `format`.
func (uc *ReportUseCase) StockHealth(ctx context.Context, format string, q dto.StockHealthQuery, ref time.Time) (*ReportFile, error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("formato %q: %w", format, domain.ErrInvalidInput)
	}
	report, err := uc.stock.Evaluate(ctx, q, ref)
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(report)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return &ReportFile{
		Filename:    fmt.Sprintf("salud-inventario-%s.%s", ref.Format("20060102"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}

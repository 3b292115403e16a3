package ports

import "github.com/jhoicas/estoque-analytics/internal/application/dto"

// StockReportRenderer convierte el consolidado de stock en un documento descargable (PDF, XLSX).
type StockReportRenderer interface {
	Render(report *dto.StockHealthDTO) ([]byte, error)
	ContentType() string
	Extension() string
}

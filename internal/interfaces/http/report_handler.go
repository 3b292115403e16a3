package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-analytics/internal/application/analytics"
	"github.com/jhoicas/estoque-analytics/internal/application/dto"
)

// ReportHandler descarga reportes (PDF, XLSX) y administra el caché de consolidados.
type ReportHandler struct {
	reports  *appanalytics.ReportUseCase
	stock    *appanalytics.StockHealthUseCase
	turnover *appanalytics.TurnoverUseCase
	now      func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(
	reports *appanalytics.ReportUseCase,
	stock *appanalytics.StockHealthUseCase,
	turnover *appanalytics.TurnoverUseCase,
	now func() time.Time,
) *ReportHandler {
	return &ReportHandler{reports: reports, stock: stock, turnover: turnover, now: now}
}

// StockHealth godoc
// @Summary      Descargar salud de inventario
// @Tags         reports
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format       path   string  true   "pdf | xlsx"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        group_by     query  string  false  "location"
// @Param        date         query  string  false  "Fecha de referencia (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-health.{format} [get]
func (h *ReportHandler) StockHealth(c *fiber.Ctx) error {
	var q dto.StockHealthQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	ref, ok := referenceDate(c, h.now)
	if !ok {
		return badRequest(c, "date debe tener formato YYYY-MM-DD")
	}

	file, err := h.reports.StockHealth(c.UserContext(), c.Params("format"), q, ref)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Data)
}

// InvalidateCache godoc
// @Summary      Invalidar caché de consolidados
// @Description  Descarta los consolidados de stock y las curvas ABC cacheadas (tras una carga del ERP).
// @Tags         reports
// @Success      204
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cache [delete]
func (h *ReportHandler) InvalidateCache(c *fiber.Ctx) error {
	if err := h.stock.InvalidateCache(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	if err := h.turnover.InvalidateCache(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-analytics/internal/application/analytics"
	"github.com/jhoicas/estoque-analytics/internal/application/dto"
)

// StockHandler maneja los endpoints de salud de inventario.
type StockHandler struct {
	uc  *appanalytics.StockHealthUseCase
	now func() time.Time
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *appanalytics.StockHealthUseCase, now func() time.Time) *StockHandler {
	return &StockHandler{uc: uc, now: now}
}

// Health godoc
// @Summary      Salud de inventario por producto
// @Description  Clasifica cada producto (peor ubicación gana) y devuelve el consolidado por estado.
//               Con group_by=location agrega un resumen por ubicación.
// @Tags         stock
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        group_by     query  string  false  "location"
// @Param        date         query  string  false  "Fecha de referencia (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.StockHealthDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/health [get]
func (h *StockHandler) Health(c *fiber.Ctx) error {
	var q dto.StockHealthQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	ref, ok := referenceDate(c, h.now)
	if !ok {
		return badRequest(c, "date debe tener formato YYYY-MM-DD")
	}

	report, err := h.uc.Evaluate(c.UserContext(), q, ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// Product godoc
// @Summary      Salud de inventario de un producto
// @Tags         stock
// @Produce      json
// @Param        product_id  path   string  true   "ID del producto"
// @Param        date        query  string  false  "Fecha de referencia (YYYY-MM-DD)"
// @Success      200  {object}  dto.StockClassificationDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/health/{product_id} [get]
func (h *StockHandler) Product(c *fiber.Ctx) error {
	ref, ok := referenceDate(c, h.now)
	if !ok {
		return badRequest(c, "date debe tener formato YYYY-MM-DD")
	}
	item, err := h.uc.GetProduct(c.UserContext(), c.Params("product_id"), ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

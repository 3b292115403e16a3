package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-analytics/internal/application/analytics"
)

// ProductHandler maneja el análisis de precio y el pronóstico de consumo de un producto.
type ProductHandler struct {
	price       *appanalytics.PriceUseCase
	consumption *appanalytics.ConsumptionUseCase
	now         func() time.Time
}

// NewProductHandler construye el handler.
func NewProductHandler(price *appanalytics.PriceUseCase, consumption *appanalytics.ConsumptionUseCase, now func() time.Time) *ProductHandler {
	return &ProductHandler{price: price, consumption: consumption, now: now}
}

// Price godoc
// @Summary      Análisis de precio de compra
// @Description  Promedio ponderado por cantidad, mínimo, máximo, último precio y tendencia en la ventana.
// @Tags         products
// @Produce      json
// @Param        product_id  path   string  true   "ID del producto"
// @Param        days        query  int     false  "Ventana en días (default configurado)"
// @Success      200  {object}  dto.PriceAnalysisDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/{product_id}/price [get]
func (h *ProductHandler) Price(c *fiber.Ctx) error {
	days := c.QueryInt("days", 0)
	res, err := h.price.Analyze(c.UserContext(), c.Params("product_id"), days, h.now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Consumption godoc
// @Summary      Pronóstico de consumo
// @Description  Promedio mensual de salidas, días de cobertura, fecha estimada de agotamiento y PMM del kardex.
// @Tags         products
// @Produce      json
// @Param        product_id  path   string  true   "ID del producto"
// @Param        months      query  int     false  "Meses de historia (default 6)"
// @Success      200  {object}  dto.ConsumptionForecastDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{product_id}/consumption [get]
func (h *ProductHandler) Consumption(c *fiber.Ctx) error {
	months := c.QueryInt("months", 0)
	res, err := h.consumption.Forecast(c.UserContext(), c.Params("product_id"), months, h.now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

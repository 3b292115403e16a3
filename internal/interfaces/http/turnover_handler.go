package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-analytics/internal/application/analytics"
)

// TurnoverHandler maneja la curva ABC.
type TurnoverHandler struct {
	uc  *appanalytics.TurnoverUseCase
	now func() time.Time
}

// NewTurnoverHandler construye el handler.
func NewTurnoverHandler(uc *appanalytics.TurnoverUseCase, now func() time.Time) *TurnoverHandler {
	return &TurnoverHandler{uc: uc, now: now}
}

// ABC godoc
// @Summary      Curva ABC por valor consumido
// @Description  A hasta 80% acumulado, B hasta 95%, C el resto. Incluye el giro de cada producto.
// @Tags         turnover
// @Produce      json
// @Param        days  query  int  false  "Ventana en días (default 365)"
// @Success      200  {object}  dto.ABCReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/turnover/abc [get]
func (h *TurnoverHandler) ABC(c *fiber.Ctx) error {
	report, err := h.uc.ABC(c.UserContext(), c.QueryInt("days", 0), h.now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

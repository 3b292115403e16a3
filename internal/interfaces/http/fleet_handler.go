package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-analytics/internal/application/analytics"
	"github.com/jhoicas/estoque-analytics/internal/application/dto"
)

// FleetHandler maneja los endpoints de estado de flota.
type FleetHandler struct {
	uc  *appanalytics.FleetStatusUseCase
	now func() time.Time
}

// NewFleetHandler construye el handler.
func NewFleetHandler(uc *appanalytics.FleetStatusUseCase, now func() time.Time) *FleetHandler {
	return &FleetHandler{uc: uc, now: now}
}

// at lee ?at=RFC3339; vacío = ahora.
func (h *FleetHandler) at(raw string) (time.Time, bool) {
	if raw == "" {
		return h.now(), true
	}
	t, err := time.Parse(time.RFC3339, raw)
	return t, err == nil
}

// Status godoc
// @Summary      Estado de la flota
// @Description  STOPPED > MAINTENANCE > IN_USE > SCHEDULED > AVAILABLE, evaluado en el instante `at`.
// @Tags         fleet
// @Produce      json
// @Param        at        query  string  false  "Instante de referencia (RFC3339). Default: ahora."
// @Param        group_by  query  string  false  "category"
// @Success      200  {object}  dto.FleetStatusDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/fleet/status [get]
func (h *FleetHandler) Status(c *fiber.Ctx) error {
	var q dto.FleetStatusQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	ref, ok := h.at(q.At)
	if !ok {
		return badRequest(c, "at debe tener formato RFC3339")
	}

	report, err := h.uc.Evaluate(c.UserContext(), q.GroupBy, ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// Asset godoc
// @Summary      Estado de un activo
// @Tags         fleet
// @Produce      json
// @Param        asset_id  path   string  true   "ID del activo"
// @Param        at        query  string  false  "Instante de referencia (RFC3339)"
// @Success      200  {object}  dto.FleetClassificationDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fleet/status/{asset_id} [get]
func (h *FleetHandler) Asset(c *fiber.Ctx) error {
	ref, ok := h.at(c.Query("at"))
	if !ok {
		return badRequest(c, "at debe tener formato RFC3339")
	}
	item, err := h.uc.GetAsset(c.UserContext(), c.Params("asset_id"), ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

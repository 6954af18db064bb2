package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cobranzas-api/internal/application/collections"
)

// DashboardHandler tendencia de ventas y cobros.
type DashboardHandler struct {
	uc *collections.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *collections.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Trend godoc
// @Summary      Tendencia del dashboard
// @Description  Resumen de cartera, series mensuales de ventas y cobros e indicadores mes a mes.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        sellers  query  string  false  "códigos de vendedor (A,B) o -1"
// @Success      200  {object}  dto.DashboardTrendDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/trend [get]
func (h *DashboardHandler) Trend(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboardTrend(c.UserContext(), GetSellerScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

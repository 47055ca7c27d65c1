package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qlkp/reciclaje-api/internal/application/analytics"
)

// DashboardHandler maneja las peticiones HTTP del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de planta
// @Description  Stocks, flujo de caja del mes, alertas y últimos movimientos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Chart godoc
// @Summary      Gráfica de entrada/salida
// @Description  Kg comprados (nhập) y vendidos (xuất) por día (7d) o por mes (6m)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "daily | monthly"  default(daily)
// @Success      200  {array}  dto.ChartBucketDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/chart [get]
func (h *DashboardHandler) Chart(c *fiber.Ctx) error {
	period := c.Query("period", analytics.ChartPeriodDaily)
	out, err := h.uc.GetChart(c.UserContext(), period)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

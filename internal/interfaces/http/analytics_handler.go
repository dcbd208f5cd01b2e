package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/burger-house/internal/application/analytics"
)

// AnalyticsHandler maneja los endpoints del panel de analítica.
type AnalyticsHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Report godoc
// @Summary      Indicadores del panel
// @Description  Ingresos y ticket promedio excluyen pedidos cancelados. Ventas por
// @Description  categoría usan precio de lista. El ranking cuenta todos los pedidos.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AnalyticsReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/analytics [get]
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	report, err := h.uc.Report(c.Context(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// Customers GET /api/admin/customers
func (h *AnalyticsHandler) Customers(c *fiber.Ctx) error {
	stats, err := h.uc.Customers(GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/alerts"
)

// AlertsHandler tablero de alertas de stock: vistas derivadas del snapshot de
// ingredientes, siempre calculadas en el momento de la consulta.
type AlertsHandler struct {
	uc *alerts.AlertsUseCase
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(uc *alerts.AlertsUseCase) *AlertsHandler {
	return &AlertsHandler{uc: uc}
}

// Overview godoc
// @Summary      Resumen del tablero de alertas
// @Description  Stock bajo, perecederos por vencer y predicciones de quiebre,
//               más el estado de la sincronización realtime.
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.AlertsOverviewResponse
// @Router       /api/alerts [get]
func (h *AlertsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Ingredientes con stock bajo
// @Tags         alerts
// @Produce      json
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/alerts/low-stock [get]
func (h *AlertsHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Expiring godoc
// @Summary      Perecederos por vencer
// @Tags         alerts
// @Produce      json
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/alerts/expiring [get]
func (h *AlertsHandler) Expiring(c *fiber.Ctx) error {
	out, err := h.uc.Expiring()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Predictions godoc
// @Summary      Predicciones de quiebre de stock
// @Description  Proyección lineal stock/consumo diario dentro de los próximos
//               14 días, clasificada por urgencia contra el lead time.
// @Tags         alerts
// @Produce      json
// @Success      200  {array}  dto.StockPredictionResponse
// @Router       /api/alerts/predictions [get]
func (h *AlertsHandler) Predictions(c *fiber.Ctx) error {
	out, err := h.uc.Predictions()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/orders"
)

// KitchenHandler display de cocina: cola de tickets y avance de estado.
type KitchenHandler struct {
	uc *orders.KitchenUseCase
}

// NewKitchenHandler construye el handler.
func NewKitchenHandler(uc *orders.KitchenUseCase) *KitchenHandler {
	return &KitchenHandler{uc: uc}
}

// ListActive godoc
// @Summary      Tickets activos de cocina
// @Tags         kitchen
// @Produce      json
// @Param        station  query  string  false  "Filtrar por estación"
// @Success      200  {array}  dto.KitchenTicketResponse
// @Router       /api/kitchen/tickets [get]
func (h *KitchenHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Query("station"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Advance godoc
// @Summary      Avanzar ticket de cocina
// @Description  pending → preparing → ready → served, sellando el timestamp.
// @Tags         kitchen
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ticket"
// @Param        body  body  dto.AdvanceTicketRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.KitchenTicketResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/kitchen/tickets/{id}/status [put]
func (h *KitchenHandler) Advance(c *fiber.Ctx) error {
	var in dto.AdvanceTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Advance(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

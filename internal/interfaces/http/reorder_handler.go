package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/alerts"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ReorderHandler reglas de reorden y disparo manual de pedidos.
type ReorderHandler struct {
	uc *alerts.ReorderUseCase
}

// NewReorderHandler construye el handler.
func NewReorderHandler(uc *alerts.ReorderUseCase) *ReorderHandler {
	return &ReorderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear regla de reorden
// @Tags         reorder
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReorderRuleRequest  true  "Regla"
// @Success      201  {object}  dto.ReorderRuleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reorder-rules [post]
func (h *ReorderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReorderRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar reglas de reorden
// @Tags         reorder
// @Produce      json
// @Success      200  {object}  dto.ReorderRuleListResponse
// @Router       /api/reorder-rules [get]
func (h *ReorderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ManualReorder godoc
// @Summary      Disparar reorden manual
// @Description  Válido desde cualquier estado salvo ordered; la regla pasa a
//               ordered con entrega estimada fija.
// @Tags         reorder
// @Produce      json
// @Param        id  path  string  true  "ID de la regla"
// @Success      200  {object}  dto.ReorderRuleResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reorder-rules/{id}/reorder [post]
func (h *ReorderHandler) ManualReorder(c *fiber.Ctx) error {
	out, err := h.uc.ManualReorder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToggleAuto godoc
// @Summary      Alternar auto-reorden
// @Tags         reorder
// @Produce      json
// @Param        id  path  string  true  "ID de la regla"
// @Success      200  {object}  dto.ReorderRuleResponse
// @Router       /api/reorder-rules/{id}/toggle-auto [post]
func (h *ReorderHandler) ToggleAuto(c *fiber.Ctx) error {
	out, err := h.uc.ToggleAutoReorder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Cambiar estado de la regla
// @Description  Recepción (ordered → delivered) o cancelación. Transiciones
//               ilegales devuelven 409.
// @Tags         reorder
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la regla"
// @Param        body  body  object  true  "status"
// @Success      200  {object}  dto.ReorderRuleResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reorder-rules/{id}/status [put]
func (h *ReorderHandler) SetStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetStatus(c.Params("id"), entity.ReorderStatus(in.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// PaymentHandler medios de pago y registro de pagos contra órdenes.
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateMethod godoc
// @Summary      Configurar medio de pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentMethodRequest  true  "Medio de pago"
// @Success      201  {object}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [post]
func (h *PaymentHandler) CreateMethod(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateMethod(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMethods godoc
// @Summary      Listar medios de pago
// @Tags         payments
// @Produce      json
// @Param        enabled  query  bool  false  "Solo habilitados"
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [get]
func (h *PaymentHandler) ListMethods(c *fiber.Ctx) error {
	out, err := h.uc.ListMethods(c.QueryBool("enabled"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateMethod godoc
// @Summary      Actualizar medio de pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del medio de pago"
// @Param        body  body  dto.UpdatePaymentMethodRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.PaymentMethodResponse
// @Router       /api/payment-methods/{id} [put]
func (h *PaymentHandler) UpdateMethod(c *fiber.Ctx) error {
	var in dto.UpdatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateMethod(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar pago contra una orden
// @Description  La orden debe estar en ready. Cuando los pagos acumulados
//               cubren el total, la orden pasa a paid.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.RegisterPaymentRequest  true  "Pago"
// @Success      201  {object}  dto.PaymentTransactionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/payments [post]
func (h *PaymentHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByOrder godoc
// @Summary      Pagos de una orden
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {array}  dto.PaymentTransactionResponse
// @Router       /api/orders/{id}/payments [get]
func (h *PaymentHandler) ListByOrder(c *fiber.Ctx) error {
	out, err := h.uc.ListByOrder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// TableHandler maneja las peticiones HTTP de mesas y reservas.
type TableHandler struct {
	uc *usecase.TableUseCase
}

// NewTableHandler construye el handler.
func NewTableHandler(uc *usecase.TableUseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// CreateTable godoc
// @Summary      Crear mesa
// @Tags         tables
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTableRequest  true  "Mesa"
// @Success      201  {object}  dto.TableResponse
// @Router       /api/tables [post]
func (h *TableHandler) CreateTable(c *fiber.Ctx) error {
	var in dto.CreateTableRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateTable(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTables godoc
// @Summary      Listar mesas
// @Tags         tables
// @Produce      json
// @Success      200  {array}  dto.TableResponse
// @Router       /api/tables [get]
func (h *TableHandler) ListTables(c *fiber.Ctx) error {
	out, err := h.uc.ListTables()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetTableStatus godoc
// @Summary      Cambiar estado de una mesa
// @Tags         tables
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la mesa"
// @Param        body  body  dto.UpdateTableStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.TableResponse
// @Router       /api/tables/{id}/status [put]
func (h *TableHandler) SetTableStatus(c *fiber.Ctx) error {
	var in dto.UpdateTableStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetTableStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteTable godoc
// @Summary      Eliminar mesa
// @Tags         tables
// @Param        id  path  string  true  "ID de la mesa"
// @Success      204
// @Router       /api/tables/{id} [delete]
func (h *TableHandler) DeleteTable(c *fiber.Ctx) error {
	if err := h.uc.DeleteTable(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateReservation godoc
// @Summary      Crear reserva
// @Description  Rechaza con 409 si la mesa tiene otra reserva activa que se
//               solapa con la ventana pedida.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "Reserva"
// @Success      201  {object}  dto.ReservationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reservations [post]
func (h *TableHandler) CreateReservation(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateReservation(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReservations godoc
// @Summary      Reservas de un día
// @Tags         reservations
// @Produce      json
// @Param        day  query  string  false  "Fecha YYYY-MM-DD; por defecto hoy"
// @Success      200  {array}  dto.ReservationResponse
// @Router       /api/reservations [get]
func (h *TableHandler) ListReservations(c *fiber.Ctx) error {
	day := time.Now()
	if q := c.Query("day"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return badBody(c)
		}
		day = parsed
	}
	out, err := h.uc.ListReservations(day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetReservationStatus godoc
// @Summary      Cambiar estado de una reserva
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reserva"
// @Param        body  body  dto.UpdateReservationStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.ReservationResponse
// @Router       /api/reservations/{id}/status [put]
func (h *TableHandler) SetReservationStatus(c *fiber.Ctx) error {
	var in dto.UpdateReservationStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetReservationStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

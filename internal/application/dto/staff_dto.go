package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStaffRequest entrada para crear un empleado. PIN en claro solo en el
// request; se guarda con bcrypt.
type CreateStaffRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Role       string          `json:"role" validate:"required"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email" validate:"omitempty,email"`
	PIN        string          `json:"pin" validate:"omitempty,len=4"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	HiredAt    *time.Time      `json:"hired_at"`
}

// UpdateStaffRequest entrada para actualizar un empleado.
type UpdateStaffRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Role       *string          `json:"role"`
	Phone      *string          `json:"phone"`
	Email      *string          `json:"email" validate:"omitempty,email"`
	PIN        *string          `json:"pin" validate:"omitempty,len=4"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	Active     *bool            `json:"active"`
}

// StaffResponse salida de un empleado (sin el hash del PIN).
type StaffResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Active     bool            `json:"active"`
	HiredAt    time.Time       `json:"hired_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// StaffListResponse lista paginada de empleados.
type StaffListResponse struct {
	Items []StaffResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

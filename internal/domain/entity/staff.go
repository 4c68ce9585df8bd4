package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff un empleado del restaurante.
// PINHash guarda el PIN de marcación de turno con bcrypt; nunca se expone.
type Staff struct {
	ID         string
	Name       string
	Role       string // mesero, cocinero, cajero, administrador
	Phone      string
	Email      string
	PINHash    string
	HourlyRate decimal.Decimal
	Active     bool
	HiredAt    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

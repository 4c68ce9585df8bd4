package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod un medio de pago configurado (efectivo, tarjeta, QR, bonos).
// SurchargePct recargo porcentual que aplica el método, si alguno.
type PaymentMethod struct {
	ID           string
	Name         string
	Kind         string // cash, card, transfer, voucher
	SurchargePct decimal.Decimal
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PaymentTransaction un pago registrado contra una orden.
// La integración con pasarelas es externa; aquí solo queda el registro.
type PaymentTransaction struct {
	ID              string
	OrderID         string
	PaymentMethodID string
	Amount          decimal.Decimal
	Tip             decimal.Decimal
	Reference       string // voucher o referencia externa
	CreatedBy       string
	CreatedAt       time.Time
}

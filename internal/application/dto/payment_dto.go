package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentMethodRequest entrada para configurar un medio de pago.
type CreatePaymentMethodRequest struct {
	Name         string          `json:"name" validate:"required"`
	Kind         string          `json:"kind" validate:"required,oneof=cash card transfer voucher"`
	SurchargePct decimal.Decimal `json:"surcharge_pct"`
}

// UpdatePaymentMethodRequest entrada para actualizar un medio de pago.
type UpdatePaymentMethodRequest struct {
	Name         *string          `json:"name"`
	SurchargePct *decimal.Decimal `json:"surcharge_pct"`
	Enabled      *bool            `json:"enabled"`
}

// PaymentMethodResponse salida de un medio de pago.
type PaymentMethodResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	SurchargePct decimal.Decimal `json:"surcharge_pct"`
	Enabled      bool            `json:"enabled"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RegisterPaymentRequest pago contra una orden.
type RegisterPaymentRequest struct {
	PaymentMethodID string          `json:"payment_method_id" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Tip             decimal.Decimal `json:"tip"`
	Reference       string          `json:"reference"`
	CreatedBy       string          `json:"created_by"`
}

// PaymentTransactionResponse un pago registrado.
type PaymentTransactionResponse struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	Amount          decimal.Decimal `json:"amount"`
	Tip             decimal.Decimal `json:"tip"`
	Reference       string          `json:"reference,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

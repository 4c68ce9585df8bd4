package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea al crear una orden.
type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=1"`
	Notes      string `json:"notes"`
}

// CreateOrderRequest entrada para crear una orden.
type CreateOrderRequest struct {
	TableID    *string            `json:"table_id"`
	CustomerID *string            `json:"customer_id"`
	StaffID    string             `json:"staff_id" validate:"required"`
	Type       string             `json:"type" validate:"required,oneof=dine_in takeout delivery"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1"`
	Notes      string             `json:"notes"`
}

// UpdateOrderStatusRequest cambio de estado de la orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse línea de una orden.
type OrderItemResponse struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Notes      string          `json:"notes,omitempty"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID         string              `json:"id"`
	TableID    *string             `json:"table_id,omitempty"`
	CustomerID *string             `json:"customer_id,omitempty"`
	StaffID    string              `json:"staff_id"`
	Type       string              `json:"type"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Tax        decimal.Decimal     `json:"tax"`
	Total      decimal.Decimal     `json:"total"`
	Notes      string              `json:"notes,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// KitchenTicketResponse un ticket del display de cocina.
type KitchenTicketResponse struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"order_id"`
	MenuItemName string     `json:"menu_item_name"`
	Station      string     `json:"station"`
	Quantity     int        `json:"quantity"`
	Notes        string     `json:"notes,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	ReadyAt      *time.Time `json:"ready_at,omitempty"`
	ServedAt     *time.Time `json:"served_at,omitempty"`
}

// AdvanceTicketRequest avance de estado de un ticket de cocina.
type AdvanceTicketRequest struct {
	Status string `json:"status" validate:"required,oneof=preparing ready served"`
}

package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// OrderType tipo de servicio de la orden.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeout  OrderType = "takeout"
	OrderTypeDelivery OrderType = "delivery"
)

// OrderStatus estado de la orden completa.
type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusOpen:      {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusPaid, OrderStatusCancelled},
}

// Order una comanda: cabecera más líneas.
type Order struct {
	ID         string
	TableID    *string
	CustomerID *string
	StaffID    string
	Type       OrderType
	Status     OrderStatus
	Items      []OrderItem
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem línea de una orden. Name y UnitPrice se copian del plato al momento
// de crearla para que cambios posteriores de carta no alteren órdenes cerradas.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	Notes      string
}

// Transition cambia el estado de la orden validando el flujo
// open → preparing → ready → paid, con cancelled alcanzable hasta ready.
func (o *Order) Transition(to OrderStatus) error {
	for _, t := range orderTransitions[o.Status] {
		if t == to {
			o.Status = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, o.Status, to)
}

package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// ReorderStatus estado de una regla de reorden.
type ReorderStatus string

const (
	ReorderStatusPending   ReorderStatus = "pending"
	ReorderStatusOrdered   ReorderStatus = "ordered"
	ReorderStatusDelivered ReorderStatus = "delivered"
	ReorderStatusCancelled ReorderStatus = "cancelled"
)

// Valid indica si el valor pertenece al conjunto cerrado de estados.
func (s ReorderStatus) Valid() bool {
	switch s {
	case ReorderStatusPending, ReorderStatusOrdered, ReorderStatusDelivered, ReorderStatusCancelled:
		return true
	}
	return false
}

// reorderTransitions tabla de transiciones permitidas.
// Camino feliz: pending → ordered → delivered. cancelled es alcanzable desde
// pending u ordered. delivered y cancelled admiten volver a ordered porque un
// reorden manual aplica desde cualquier estado distinto de ordered.
var reorderTransitions = map[ReorderStatus][]ReorderStatus{
	ReorderStatusPending:   {ReorderStatusOrdered, ReorderStatusCancelled},
	ReorderStatusOrdered:   {ReorderStatusDelivered, ReorderStatusCancelled},
	ReorderStatusDelivered: {ReorderStatusOrdered},
	ReorderStatusCancelled: {ReorderStatusOrdered},
}

// CanTransition indica si el cambio de estado s → to está permitido.
func (s ReorderStatus) CanTransition(to ReorderStatus) bool {
	for _, t := range reorderTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// ReorderRule política de reposición de un ingrediente con un proveedor.
type ReorderRule struct {
	ID                 string
	IngredientID       string
	IngredientName     string
	Supplier           string
	ReorderPoint       decimal.Decimal // umbral de stock que dispara el pedido
	ReorderQuantity    decimal.Decimal // cantidad a pedir
	AutoReorderEnabled bool
	LastReorder        *time.Time
	Status             ReorderStatus
	EstimatedDelivery  *time.Time
	Cost               decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Transition cambia el estado de la regla validando contra la tabla de
// transiciones. Devuelve domain.ErrInvalidTransition si el cambio es ilegal;
// el motor no depende de que la UI esconda botones.
func (r *ReorderRule) Transition(to ReorderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidTransition, to)
	}
	if !r.Status.CanTransition(to) {
		return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, r.Status, to)
	}
	r.Status = to
	return nil
}

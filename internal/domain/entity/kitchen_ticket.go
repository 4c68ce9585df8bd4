package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// TicketStatus estado de un ticket en el display de cocina.
type TicketStatus string

const (
	TicketStatusPending   TicketStatus = "pending"
	TicketStatusPreparing TicketStatus = "preparing"
	TicketStatusReady     TicketStatus = "ready"
	TicketStatusServed    TicketStatus = "served"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusPending:   {TicketStatusPreparing},
	TicketStatusPreparing: {TicketStatusReady},
	TicketStatusReady:     {TicketStatusServed},
}

// KitchenTicket una línea de orden en la cola de su estación de cocina.
// Los timestamps de avance permiten medir tiempos de preparación.
type KitchenTicket struct {
	ID           string
	OrderID      string
	OrderItemID  string
	MenuItemName string
	Station      string
	Quantity     int
	Notes        string
	Status       TicketStatus
	CreatedAt    time.Time
	StartedAt    *time.Time
	ReadyAt      *time.Time
	ServedAt     *time.Time
}

// Advance mueve el ticket al estado dado siguiendo el flujo
// pending → preparing → ready → served y sella el timestamp correspondiente.
func (t *KitchenTicket) Advance(to TicketStatus, now time.Time) error {
	allowed := false
	for _, s := range ticketTransitions[t.Status] {
		if s == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, t.Status, to)
	}
	t.Status = to
	switch to {
	case TicketStatusPreparing:
		t.StartedAt = &now
	case TicketStatusReady:
		t.ReadyAt = &now
	case TicketStatusServed:
		t.ServedAt = &now
	}
	return nil
}

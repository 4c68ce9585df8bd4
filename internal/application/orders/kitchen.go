package orders

import (
	"context"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// KitchenUseCase cola del display de cocina: tickets activos por estación y
// avance de estado con sellado de tiempos.
type KitchenUseCase struct {
	ticketRepo repository.KitchenTicketRepository
	notifier   realtime.Notifier
}

// NewKitchenUseCase construye el caso de uso.
func NewKitchenUseCase(ticketRepo repository.KitchenTicketRepository, notifier realtime.Notifier) *KitchenUseCase {
	return &KitchenUseCase{ticketRepo: ticketRepo, notifier: notifier}
}

// ListActive tickets no servidos; station vacío devuelve todas las estaciones.
func (uc *KitchenUseCase) ListActive(station string) ([]dto.KitchenTicketResponse, error) {
	tickets, err := uc.ticketRepo.ListActive(station)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KitchenTicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, dto.NewKitchenTicketResponse(t))
	}
	return out, nil
}

// Advance mueve un ticket por pending → preparing → ready → served.
func (uc *KitchenUseCase) Advance(ctx context.Context, id, status string) (*dto.KitchenTicketResponse, error) {
	ticket, err := uc.ticketRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if err := ticket.Advance(entity.TicketStatus(status), time.Now()); err != nil {
		return nil, err
	}
	if err := uc.ticketRepo.Update(ticket); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelKitchen)
	resp := dto.NewKitchenTicketResponse(ticket)
	return &resp, nil
}

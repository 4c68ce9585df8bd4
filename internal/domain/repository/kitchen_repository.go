package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// KitchenTicketRepository puerto de persistencia para los tickets del display
// de cocina.
type KitchenTicketRepository interface {
	CreateBatch(tickets []*entity.KitchenTicket) error
	GetByID(id string) (*entity.KitchenTicket, error)
	// ListActive tickets no servidos; station vacío devuelve todas las estaciones.
	ListActive(station string) ([]*entity.KitchenTicket, error)
	Update(ticket *entity.KitchenTicket) error
}

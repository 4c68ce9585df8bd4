package repository

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// TableRepository puerto de persistencia para Table.
type TableRepository interface {
	Create(table *entity.Table) error
	GetByID(id string) (*entity.Table, error)
	List() ([]*entity.Table, error)
	Update(table *entity.Table) error
	UpdateStatus(id string, status entity.TableStatus) error
	Delete(id string) error
}

// ReservationRepository puerto de persistencia para Reservation.
type ReservationRepository interface {
	Create(res *entity.Reservation) error
	GetByID(id string) (*entity.Reservation, error)
	// ListByDay reservas cuyo inicio cae dentro del día indicado.
	ListByDay(day time.Time) ([]*entity.Reservation, error)
	// ListActiveByTable reservas confirmadas o sentadas de la mesa dentro de
	// la ventana, para detección de solapamientos.
	ListActiveByTable(tableID string, from, to time.Time) ([]*entity.Reservation, error)
	Update(res *entity.Reservation) error
}

package entity

import "time"

// TableStatus estado de ocupación de una mesa.
type TableStatus string

const (
	TableStatusFree     TableStatus = "free"
	TableStatusOccupied TableStatus = "occupied"
	TableStatusReserved TableStatus = "reserved"
	TableStatusCleaning TableStatus = "cleaning"
)

// Table una mesa del salón.
type Table struct {
	ID        string
	Number    int
	Capacity  int
	Zone      string // salón, terraza, barra
	Status    TableStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationStatus estado de una reserva.
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusSeated    ReservationStatus = "seated"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusNoShow    ReservationStatus = "no_show"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation reserva de una mesa para una fecha/hora.
// La ventana de conflicto con otras reservas de la misma mesa es DurationMin.
type Reservation struct {
	ID           string
	TableID      string
	CustomerName string
	Phone        string
	PartySize    int
	StartsAt     time.Time
	DurationMin  int
	Status       ReservationStatus
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Overlaps indica si dos reservas de la misma mesa se solapan en el tiempo.
func (r Reservation) Overlaps(other Reservation) bool {
	if r.TableID != other.TableID {
		return false
	}
	endA := r.StartsAt.Add(time.Duration(r.DurationMin) * time.Minute)
	endB := other.StartsAt.Add(time.Duration(other.DurationMin) * time.Minute)
	return r.StartsAt.Before(endB) && other.StartsAt.Before(endA)
}

package dto

import "time"

// CreateTableRequest entrada para crear una mesa.
type CreateTableRequest struct {
	Number   int    `json:"number" validate:"min=1"`
	Capacity int    `json:"capacity" validate:"min=1"`
	Zone     string `json:"zone"`
}

// UpdateTableStatusRequest cambio de estado de una mesa.
type UpdateTableStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=free occupied reserved cleaning"`
}

// TableResponse salida de una mesa.
type TableResponse struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Capacity  int       `json:"capacity"`
	Zone      string    `json:"zone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateReservationRequest entrada para crear una reserva.
type CreateReservationRequest struct {
	TableID      string    `json:"table_id" validate:"required"`
	CustomerName string    `json:"customer_name" validate:"required"`
	Phone        string    `json:"phone"`
	PartySize    int       `json:"party_size" validate:"min=1"`
	StartsAt     time.Time `json:"starts_at" validate:"required"`
	DurationMin  int       `json:"duration_min"`
	Notes        string    `json:"notes"`
}

// UpdateReservationStatusRequest cambio de estado de una reserva.
type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed seated completed no_show cancelled"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID           string    `json:"id"`
	TableID      string    `json:"table_id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	PartySize    int       `json:"party_size"`
	StartsAt     time.Time `json:"starts_at"`
	DurationMin  int       `json:"duration_min"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

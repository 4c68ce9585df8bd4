package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

const reservationColumns = `id, table_id, customer_name, phone, party_size, starts_at, duration_min,
		status, notes, created_at, updated_at`

// ReservationRepo implementación de ReservationRepository (usable con pool o tx).
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// Create persiste una reserva.
func (r *ReservationRepo) Create(res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		res.ID, res.TableID, res.CustomerName, res.Phone, res.PartySize, res.StartsAt, res.DurationMin,
		res.Status, res.Notes, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID.
func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	var res entity.Reservation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.TableID, &res.CustomerName, &res.Phone, &res.PartySize, &res.StartsAt, &res.DurationMin,
		&res.Status, &res.Notes, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// ListByDay reservas cuyo inicio cae dentro del día indicado.
func (r *ReservationRepo) ListByDay(day time.Time) ([]*entity.Reservation, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	query := `
		SELECT ` + reservationColumns + ` FROM reservations
		WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list reservations by day: %w", err)
	}
	return r.scanRows(rows)
}

// ListActiveByTable reservas confirmadas o sentadas de la mesa dentro de la
// ventana, para detección de solapamientos.
func (r *ReservationRepo) ListActiveByTable(tableID string, from, to time.Time) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + ` FROM reservations
		WHERE table_id = $1 AND status IN ('confirmed', 'seated')
		AND starts_at >= $2 AND starts_at < $3 ORDER BY starts_at`
	rows, err := r.q.Query(context.Background(), query, tableID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}
	return r.scanRows(rows)
}

func (r *ReservationRepo) scanRows(rows pgx.Rows) ([]*entity.Reservation, error) {
	defer rows.Close()
	var list []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := rows.Scan(
			&res.ID, &res.TableID, &res.CustomerName, &res.Phone, &res.PartySize, &res.StartsAt, &res.DurationMin,
			&res.Status, &res.Notes, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// Update actualiza una reserva.
func (r *ReservationRepo) Update(res *entity.Reservation) error {
	query := `
		UPDATE reservations SET customer_name = $2, phone = $3, party_size = $4, starts_at = $5,
			duration_min = $6, status = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		res.ID, res.CustomerName, res.Phone, res.PartySize, res.StartsAt,
		res.DurationMin, res.Status, res.Notes, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return nil
}

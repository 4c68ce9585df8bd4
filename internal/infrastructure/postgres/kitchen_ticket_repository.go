package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.KitchenTicketRepository = (*KitchenTicketRepo)(nil)

const ticketColumns = `id, order_id, order_item_id, menu_item_name, station, quantity, notes, status,
		created_at, started_at, ready_at, served_at`

// KitchenTicketRepo implementación de KitchenTicketRepository (usable con pool o tx).
type KitchenTicketRepo struct {
	q Querier
}

// NewKitchenTicketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKitchenTicketRepository(q Querier) *KitchenTicketRepo {
	return &KitchenTicketRepo{q: q}
}

// CreateBatch persiste los tickets de una orden.
func (r *KitchenTicketRepo) CreateBatch(tickets []*entity.KitchenTicket) error {
	ctx := context.Background()
	query := `
		INSERT INTO kitchen_tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, t := range tickets {
		_, err := r.q.Exec(ctx, query,
			t.ID, t.OrderID, t.OrderItemID, t.MenuItemName, t.Station, t.Quantity, t.Notes, t.Status,
			t.CreatedAt, t.StartedAt, t.ReadyAt, t.ServedAt,
		)
		if err != nil {
			return fmt.Errorf("insert kitchen ticket: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un ticket por ID.
func (r *KitchenTicketRepo) GetByID(id string) (*entity.KitchenTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM kitchen_tickets WHERE id = $1`
	var t entity.KitchenTicket
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.OrderID, &t.OrderItemID, &t.MenuItemName, &t.Station, &t.Quantity, &t.Notes, &t.Status,
		&t.CreatedAt, &t.StartedAt, &t.ReadyAt, &t.ServedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kitchen ticket: %w", err)
	}
	return &t, nil
}

// ListActive tickets no servidos en orden de llegada; station vacío devuelve
// todas las estaciones.
func (r *KitchenTicketRepo) ListActive(station string) ([]*entity.KitchenTicket, error) {
	ctx := context.Background()
	var (
		rows pgx.Rows
		err  error
	)
	if station != "" {
		rows, err = r.q.Query(ctx,
			`SELECT `+ticketColumns+` FROM kitchen_tickets WHERE status <> 'served' AND station = $1 ORDER BY created_at`,
			station)
	} else {
		rows, err = r.q.Query(ctx,
			`SELECT `+ticketColumns+` FROM kitchen_tickets WHERE status <> 'served' ORDER BY created_at`)
	}
	if err != nil {
		return nil, fmt.Errorf("list active kitchen tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.KitchenTicket
	for rows.Next() {
		var t entity.KitchenTicket
		if err := rows.Scan(
			&t.ID, &t.OrderID, &t.OrderItemID, &t.MenuItemName, &t.Station, &t.Quantity, &t.Notes, &t.Status,
			&t.CreatedAt, &t.StartedAt, &t.ReadyAt, &t.ServedAt,
		); err != nil {
			return nil, fmt.Errorf("scan kitchen ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza estado y sellos de tiempo de un ticket.
func (r *KitchenTicketRepo) Update(t *entity.KitchenTicket) error {
	query := `
		UPDATE kitchen_tickets SET status = $2, started_at = $3, ready_at = $4, served_at = $5
		WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, t.ID, t.Status, t.StartedAt, t.ReadyAt, t.ServedAt); err != nil {
		return fmt.Errorf("update kitchen ticket: %w", err)
	}
	return nil
}

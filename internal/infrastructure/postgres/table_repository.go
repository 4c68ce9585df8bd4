package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo implementación de TableRepository (usable con pool o tx).
type TableRepo struct {
	q Querier
}

// NewTableRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

// Create persiste una mesa.
func (r *TableRepo) Create(t *entity.Table) error {
	query := `
		INSERT INTO tables (id, number, capacity, zone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Number, t.Capacity, t.Zone, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

// GetByID obtiene una mesa por ID.
func (r *TableRepo) GetByID(id string) (*entity.Table, error) {
	query := `SELECT id, number, capacity, zone, status, created_at, updated_at FROM tables WHERE id = $1`
	var t entity.Table
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Number, &t.Capacity, &t.Zone, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get table: %w", err)
	}
	return &t, nil
}

// List todas las mesas ordenadas por número.
func (r *TableRepo) List() ([]*entity.Table, error) {
	query := `SELECT id, number, capacity, zone, status, created_at, updated_at FROM tables ORDER BY number`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Table
	for rows.Next() {
		var t entity.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.Zone, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una mesa.
func (r *TableRepo) Update(t *entity.Table) error {
	query := `UPDATE tables SET number = $2, capacity = $3, zone = $4, status = $5, updated_at = $6 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Number, t.Capacity, t.Zone, t.Status, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update table: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado de ocupación.
func (r *TableRepo) UpdateStatus(id string, status entity.TableStatus) error {
	query := `UPDATE tables SET status = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, status); err != nil {
		return fmt.Errorf("update table status: %w", err)
	}
	return nil
}

// Delete elimina una mesa por ID.
func (r *TableRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM tables WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	return nil
}

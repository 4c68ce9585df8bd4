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

var _ repository.StaffRepository = (*StaffRepo)(nil)

const staffColumns = `id, name, role, phone, email, pin_hash, hourly_rate, active, hired_at, created_at, updated_at`

// StaffRepo implementación de StaffRepository (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// Create persiste un empleado.
func (r *StaffRepo) Create(s *entity.Staff) error {
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Role, s.Phone, s.Email, s.PINHash, s.HourlyRate, s.Active, s.HiredAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *StaffRepo) GetByID(id string) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Role, &s.Phone, &s.Email, &s.PINHash, &s.HourlyRate, &s.Active, &s.HiredAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

// List empleados con paginación, opcionalmente solo activos.
func (r *StaffRepo) List(activeOnly bool, limit, offset int) ([]*entity.Staff, error) {
	ctx := context.Background()
	var (
		rows pgx.Rows
		err  error
	)
	if activeOnly {
		rows, err = r.q.Query(ctx,
			`SELECT `+staffColumns+` FROM staff WHERE active ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	} else {
		rows, err = r.q.Query(ctx,
			`SELECT `+staffColumns+` FROM staff ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Role, &s.Phone, &s.Email, &s.PINHash, &s.HourlyRate, &s.Active, &s.HiredAt, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un empleado.
func (r *StaffRepo) Update(s *entity.Staff) error {
	query := `
		UPDATE staff SET name = $2, role = $3, phone = $4, email = $5, pin_hash = $6,
			hourly_rate = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Role, s.Phone, s.Email, s.PINHash, s.HourlyRate, s.Active, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *StaffRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = `id, name, category, unit, current_stock, minimum_stock, maximum_stock,
		cost_per_unit, supplier, supplier_contact, is_perishable, expiry_date,
		storage_location, daily_usage, lead_time_days, created_at, updated_at`

// IngredientRepo implementación de IngredientRepository (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (` + ingredientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.Category, ing.Unit, ing.CurrentStock, ing.MinimumStock, ing.MaximumStock,
		ing.CostPerUnit, ing.Supplier, ing.SupplierContact, ing.IsPerishable, ing.ExpiryDate,
		ing.StorageLocation, ing.DailyUsage, ing.LeadTimeDays, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	return r.get(`SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1`, id)
}

// GetForUpdate obtiene un ingrediente bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *IngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	return r.get(`SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1 FOR UPDATE`, id)
}

func (r *IngredientRepo) get(query, id string) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ing.ID, &ing.Name, &ing.Category, &ing.Unit, &ing.CurrentStock, &ing.MinimumStock, &ing.MaximumStock,
		&ing.CostPerUnit, &ing.Supplier, &ing.SupplierContact, &ing.IsPerishable, &ing.ExpiryDate,
		&ing.StorageLocation, &ing.DailyUsage, &ing.LeadTimeDays, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &ing, nil
}

// List lista ingredientes con paginación.
func (r *IngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return r.scanRows(rows)
}

// ListAll todos los ingredientes, para el snapshot del motor de alertas.
func (r *IngredientRepo) ListAll() ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all ingredients: %w", err)
	}
	return r.scanRows(rows)
}

func (r *IngredientRepo) scanRows(rows pgx.Rows) ([]*entity.Ingredient, error) {
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(
			&ing.ID, &ing.Name, &ing.Category, &ing.Unit, &ing.CurrentStock, &ing.MinimumStock, &ing.MaximumStock,
			&ing.CostPerUnit, &ing.Supplier, &ing.SupplierContact, &ing.IsPerishable, &ing.ExpiryDate,
			&ing.StorageLocation, &ing.DailyUsage, &ing.LeadTimeDays, &ing.CreatedAt, &ing.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &ing)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables (el stock va por UpdateStock).
func (r *IngredientRepo) Update(ing *entity.Ingredient) error {
	query := `
		UPDATE ingredients SET name = $2, category = $3, unit = $4, minimum_stock = $5,
			maximum_stock = $6, cost_per_unit = $7, supplier = $8, supplier_contact = $9,
			is_perishable = $10, expiry_date = $11, storage_location = $12, daily_usage = $13,
			lead_time_days = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.Category, ing.Unit, ing.MinimumStock,
		ing.MaximumStock, ing.CostPerUnit, ing.Supplier, ing.SupplierContact,
		ing.IsPerishable, ing.ExpiryDate, ing.StorageLocation, ing.DailyUsage,
		ing.LeadTimeDays, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	return nil
}

// UpdateStock fija el nivel de stock de un ingrediente.
func (r *IngredientRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	query := `UPDATE ingredients SET current_stock = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, quantity); err != nil {
		return fmt.Errorf("update ingredient stock: %w", err)
	}
	return nil
}

// Delete elimina un ingrediente por ID.
func (r *IngredientRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}

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

var _ repository.ReorderRuleRepository = (*ReorderRuleRepo)(nil)

const reorderRuleColumns = `r.id, r.ingredient_id, i.name, r.supplier, r.reorder_point, r.reorder_quantity,
		r.auto_reorder_enabled, r.last_reorder, r.status, r.estimated_delivery, r.cost,
		r.created_at, r.updated_at`

// ReorderRuleRepo implementación de ReorderRuleRepository (usable con pool o tx).
// El nombre del ingrediente se resuelve por join, no se duplica.
type ReorderRuleRepo struct {
	q Querier
}

// NewReorderRuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReorderRuleRepository(q Querier) *ReorderRuleRepo {
	return &ReorderRuleRepo{q: q}
}

// Create persiste una regla de reorden.
func (r *ReorderRuleRepo) Create(rule *entity.ReorderRule) error {
	query := `
		INSERT INTO reorder_rules (id, ingredient_id, supplier, reorder_point, reorder_quantity,
			auto_reorder_enabled, last_reorder, status, estimated_delivery, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.IngredientID, rule.Supplier, rule.ReorderPoint, rule.ReorderQuantity,
		rule.AutoReorderEnabled, rule.LastReorder, rule.Status, rule.EstimatedDelivery, rule.Cost,
		rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reorder rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *ReorderRuleRepo) GetByID(id string) (*entity.ReorderRule, error) {
	query := `
		SELECT ` + reorderRuleColumns + `
		FROM reorder_rules r JOIN ingredients i ON i.id = r.ingredient_id
		WHERE r.id = $1`
	var rule entity.ReorderRule
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rule.ID, &rule.IngredientID, &rule.IngredientName, &rule.Supplier, &rule.ReorderPoint, &rule.ReorderQuantity,
		&rule.AutoReorderEnabled, &rule.LastReorder, &rule.Status, &rule.EstimatedDelivery, &rule.Cost,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reorder rule: %w", err)
	}
	return &rule, nil
}

// List reglas con paginación.
func (r *ReorderRuleRepo) List(limit, offset int) ([]*entity.ReorderRule, error) {
	query := `
		SELECT ` + reorderRuleColumns + `
		FROM reorder_rules r JOIN ingredients i ON i.id = r.ingredient_id
		ORDER BY i.name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reorder rules: %w", err)
	}
	return r.scanRows(rows)
}

// ListAutoPending reglas pending con auto-reorden habilitado, candidatas a
// evaluación automática.
func (r *ReorderRuleRepo) ListAutoPending() ([]*entity.ReorderRule, error) {
	query := `
		SELECT ` + reorderRuleColumns + `
		FROM reorder_rules r JOIN ingredients i ON i.id = r.ingredient_id
		WHERE r.auto_reorder_enabled AND r.status = 'pending'
		ORDER BY i.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list auto pending reorder rules: %w", err)
	}
	return r.scanRows(rows)
}

func (r *ReorderRuleRepo) scanRows(rows pgx.Rows) ([]*entity.ReorderRule, error) {
	defer rows.Close()
	var list []*entity.ReorderRule
	for rows.Next() {
		var rule entity.ReorderRule
		if err := rows.Scan(
			&rule.ID, &rule.IngredientID, &rule.IngredientName, &rule.Supplier, &rule.ReorderPoint, &rule.ReorderQuantity,
			&rule.AutoReorderEnabled, &rule.LastReorder, &rule.Status, &rule.EstimatedDelivery, &rule.Cost,
			&rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reorder rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Update actualiza una regla (estado, flags y sellos de tiempo).
func (r *ReorderRuleRepo) Update(rule *entity.ReorderRule) error {
	query := `
		UPDATE reorder_rules SET supplier = $2, reorder_point = $3, reorder_quantity = $4,
			auto_reorder_enabled = $5, last_reorder = $6, status = $7, estimated_delivery = $8,
			cost = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.Supplier, rule.ReorderPoint, rule.ReorderQuantity,
		rule.AutoReorderEnabled, rule.LastReorder, rule.Status, rule.EstimatedDelivery,
		rule.Cost, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reorder rule: %w", err)
	}
	return nil
}

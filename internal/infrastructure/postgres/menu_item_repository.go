package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/normalize"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

const menuItemColumns = `id, name, category, description, price, available, prep_minutes, station, created_at, updated_at`

// MenuItemRepo implementación de MenuItemRepository (usable con pool o tx).
// La receta vive en menu_item_recipe y se reemplaza completa en cada Update.
// name_search guarda el nombre normalizado (minúsculas, sin tildes) para que
// Search funcione sin depender de extensiones como unaccent.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

// Create persiste un plato con su receta.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	ctx := context.Background()
	query := `
		INSERT INTO menu_items (` + menuItemColumns + `, name_search)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.Description, item.Price, item.Available,
		item.PrepMinutes, item.Station, item.CreatedAt, item.UpdatedAt, normalize.Search(item.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return r.insertRecipe(ctx, item.ID, item.Recipe)
}

// GetByID obtiene un plato con su receta.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	ctx := context.Background()
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`
	var item entity.MenuItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Category, &item.Description, &item.Price, &item.Available,
		&item.PrepMinutes, &item.Station, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	recipe, err := r.recipeOf(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	item.Recipe = recipe
	return &item, nil
}

// List platos con paginación. limit 0 devuelve todos.
func (r *MenuItemRepo) List(limit, offset int) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items ORDER BY name`
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.q.Query(context.Background(), query+` LIMIT $1 OFFSET $2`, limit, offset)
	} else {
		rows, err = r.q.Query(context.Background(), query)
	}
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return r.scanWithRecipes(rows)
}

// Search busca por nombre normalizado (sin tildes, case-insensitive).
func (r *MenuItemRepo) Search(term string, limit, offset int) ([]*entity.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + ` FROM menu_items
		WHERE name_search LIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, normalize.Search(term), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search menu items: %w", err)
	}
	return r.scanWithRecipes(rows)
}

func (r *MenuItemRepo) scanWithRecipes(rows pgx.Rows) ([]*entity.MenuItem, error) {
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &item.Description, &item.Price, &item.Available,
			&item.PrepMinutes, &item.Station, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, item := range list {
		recipe, err := r.recipeOf(context.Background(), item.ID)
		if err != nil {
			return nil, err
		}
		item.Recipe = recipe
	}
	return list, nil
}

// Update actualiza el plato y reemplaza la receta completa.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	ctx := context.Background()
	query := `
		UPDATE menu_items SET name = $2, category = $3, description = $4, price = $5,
			available = $6, prep_minutes = $7, station = $8, updated_at = $9, name_search = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.Description, item.Price,
		item.Available, item.PrepMinutes, item.Station, item.UpdatedAt, normalize.Search(item.Name),
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM menu_item_recipe WHERE menu_item_id = $1`, item.ID); err != nil {
		return fmt.Errorf("clear menu item recipe: %w", err)
	}
	return r.insertRecipe(ctx, item.ID, item.Recipe)
}

// SetAvailability fija la disponibilidad derivada del stock.
func (r *MenuItemRepo) SetAvailability(id string, available bool) error {
	query := `UPDATE menu_items SET available = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, available); err != nil {
		return fmt.Errorf("set menu item availability: %w", err)
	}
	return nil
}

// Delete elimina un plato y su receta.
func (r *MenuItemRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM menu_item_recipe WHERE menu_item_id = $1`, id); err != nil {
		return fmt.Errorf("delete menu item recipe: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

func (r *MenuItemRepo) insertRecipe(ctx context.Context, menuItemID string, recipe []entity.RecipeLine) error {
	for _, line := range recipe {
		_, err := r.q.Exec(ctx,
			`INSERT INTO menu_item_recipe (menu_item_id, ingredient_id, quantity) VALUES ($1, $2, $3)`,
			menuItemID, line.IngredientID, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}
	return nil
}

func (r *MenuItemRepo) recipeOf(ctx context.Context, menuItemID string) ([]entity.RecipeLine, error) {
	rows, err := r.q.Query(ctx,
		`SELECT ingredient_id, quantity FROM menu_item_recipe WHERE menu_item_id = $1`, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	defer rows.Close()
	var recipe []entity.RecipeLine
	for rows.Next() {
		var line entity.RecipeLine
		if err := rows.Scan(&line.IngredientID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		recipe = append(recipe, line)
	}
	return recipe, rows.Err()
}

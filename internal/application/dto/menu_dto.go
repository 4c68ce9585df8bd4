package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLineDTO cantidad de un ingrediente por porción.
type RecipeLineDTO struct {
	IngredientID string          `json:"ingredient_id" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CreateMenuItemRequest entrada para crear un plato.
type CreateMenuItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PrepMinutes int             `json:"prep_minutes" validate:"min=0"`
	Station     string          `json:"station"`
	Recipe      []RecipeLineDTO `json:"recipe"`
}

// UpdateMenuItemRequest entrada para actualizar un plato (campos opcionales).
// Recipe no nil reemplaza la receta completa.
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	PrepMinutes *int             `json:"prep_minutes" validate:"omitempty,min=0"`
	Station     *string          `json:"station"`
	Recipe      []RecipeLineDTO  `json:"recipe"`
}

// MenuItemResponse salida de un plato.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	PrepMinutes int             `json:"prep_minutes"`
	Station     string          `json:"station"`
	Recipe      []RecipeLineDTO `json:"recipe"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MenuItemListResponse lista paginada de platos.
type MenuItemListResponse struct {
	Items []MenuItemResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

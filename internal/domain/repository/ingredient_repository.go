package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// IngredientRepository puerto de persistencia para Ingredient (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido dentro
// de una transacción.
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	GetForUpdate(id string) (*entity.Ingredient, error)
	List(limit, offset int) ([]*entity.Ingredient, error)
	ListAll() ([]*entity.Ingredient, error)
	Update(ingredient *entity.Ingredient) error
	UpdateStock(id string, quantity decimal.Decimal) error
	Delete(id string) error
}

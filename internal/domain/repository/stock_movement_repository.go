package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// StockMovementRepository puerto de persistencia para el historial de
// movimientos de stock de ingredientes.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListByIngredient(ingredientID string, limit, offset int) ([]*entity.StockMovement, error)
}

package orders

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La creación de una orden descuenta stock,
// escribe la comanda y genera los tickets de cocina en una sola transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		ticketRepo repository.KitchenTicketRepository,
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// AdjustStockUseCase ajusta el stock de un ingrediente de forma transaccional:
// bloquea la fila (SELECT FOR UPDATE), aplica el delta con signo y deja el
// movimiento en el historial. Commit o Rollback los gestiona el TxRunner.
type AdjustStockUseCase struct {
	txRunner TxRunner
	notifier realtime.Notifier
	log      *logger.Logger
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, notifier realtime.Notifier, log *logger.Logger) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, notifier: notifier, log: log}
}

// Adjust aplica un ajuste manual (ADJUSTMENT o WASTE). El delta puede ser
// negativo pero el stock resultante no: un ajuste que dejaría stock negativo
// devuelve domain.ErrInsufficientStock.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, ingredientID, createdBy string, in dto.AdjustStockRequest) (*dto.IngredientResponse, error) {
	movType := in.Type
	if movType == "" {
		movType = entity.MovementTypeADJUSTMENT
	}
	if movType != entity.MovementTypeADJUSTMENT && movType != entity.MovementTypeWASTE {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	// Las mermas siempre restan.
	if movType == entity.MovementTypeWASTE && in.Quantity.IsPositive() {
		in.Quantity = in.Quantity.Neg()
	}

	var updated *entity.Ingredient
	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del ingrediente para evitar condiciones de carrera
		ing, err := ingredientRepo.GetForUpdate(ingredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrNotFound
		}

		newStock := ing.CurrentStock.Add(in.Quantity)
		if newStock.IsNegative() {
			return domain.ErrInsufficientStock
		}
		if err := ingredientRepo.UpdateStock(ing.ID, newStock); err != nil {
			return err
		}
		ing.CurrentStock = newStock
		ing.UpdatedAt = time.Now()

		mov := &entity.StockMovement{
			ID:           uuid.New().String(),
			IngredientID: ing.ID,
			Type:         movType,
			Quantity:     in.Quantity,
			Reason:       in.Reason,
			CreatedBy:    createdBy,
			CreatedAt:    time.Now(),
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		updated = ing
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notificar después del commit: los suscriptores del dominio stock (y el
	// evaluador de auto-reorden) refrescan contra el estado ya persistido.
	uc.notifier.Notify(ctx, realtime.ChannelIngredients)
	uc.log.Info().
		Str("ingredient_id", ingredientID).
		Str("type", movType).
		Str("quantity", in.Quantity.String()).
		Msg("ajuste de stock aplicado")

	resp := dto.NewIngredientResponse(updated)
	return &resp, nil
}

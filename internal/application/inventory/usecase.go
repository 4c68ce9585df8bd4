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
)

// IngredientUseCase CRUD de ingredientes. El stock no se edita por Update:
// solo vía AdjustStockUseCase o el consumo por recetas de las órdenes, para
// que todo cambio de nivel quede en el historial de movimientos.
type IngredientUseCase struct {
	ingredientRepo repository.IngredientRepository
	movementRepo   repository.StockMovementRepository
	notifier       realtime.Notifier
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	notifier realtime.Notifier,
) *IngredientUseCase {
	return &IngredientUseCase{
		ingredientRepo: ingredientRepo,
		movementRepo:   movementRepo,
		notifier:       notifier,
	}
}

// Create da de alta un ingrediente.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock.IsNegative() || in.MinimumStock.IsNegative() || in.DailyUsage.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ing := &entity.Ingredient{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Category:        in.Category,
		Unit:            in.Unit,
		CurrentStock:    in.CurrentStock,
		MinimumStock:    in.MinimumStock,
		MaximumStock:    in.MaximumStock,
		CostPerUnit:     in.CostPerUnit,
		Supplier:        in.Supplier,
		SupplierContact: in.SupplierContact,
		IsPerishable:    in.IsPerishable,
		ExpiryDate:      in.ExpiryDate,
		StorageLocation: in.StorageLocation,
		DailyUsage:      in.DailyUsage,
		LeadTimeDays:    in.LeadTimeDays,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.ingredientRepo.Create(ing); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelIngredients)
	resp := dto.NewIngredientResponse(ing)
	return &resp, nil
}

// GetByID un ingrediente por id.
func (uc *IngredientUseCase) GetByID(id string) (*dto.IngredientResponse, error) {
	ing, err := uc.ingredientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewIngredientResponse(ing)
	return &resp, nil
}

// List ingredientes paginados.
func (uc *IngredientUseCase) List(limit, offset int) (*dto.IngredientListResponse, error) {
	items, err := uc.ingredientRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewIngredientResponse(it))
	}
	return &dto.IngredientListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update campos editables de un ingrediente (el stock queda fuera).
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.ingredientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		ing.Name = *in.Name
	}
	if in.Category != nil {
		ing.Category = *in.Category
	}
	if in.Unit != nil {
		ing.Unit = *in.Unit
	}
	if in.MinimumStock != nil {
		ing.MinimumStock = *in.MinimumStock
	}
	if in.MaximumStock != nil {
		ing.MaximumStock = *in.MaximumStock
	}
	if in.CostPerUnit != nil {
		ing.CostPerUnit = *in.CostPerUnit
	}
	if in.Supplier != nil {
		ing.Supplier = *in.Supplier
	}
	if in.SupplierContact != nil {
		ing.SupplierContact = *in.SupplierContact
	}
	if in.IsPerishable != nil {
		ing.IsPerishable = *in.IsPerishable
	}
	if in.ExpiryDate != nil {
		ing.ExpiryDate = in.ExpiryDate
	}
	if in.StorageLocation != nil {
		ing.StorageLocation = *in.StorageLocation
	}
	if in.DailyUsage != nil {
		ing.DailyUsage = *in.DailyUsage
	}
	if in.LeadTimeDays != nil {
		ing.LeadTimeDays = *in.LeadTimeDays
	}
	ing.UpdatedAt = time.Now()

	if err := uc.ingredientRepo.Update(ing); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelIngredients)
	resp := dto.NewIngredientResponse(ing)
	return &resp, nil
}

// Delete elimina un ingrediente.
func (uc *IngredientUseCase) Delete(ctx context.Context, id string) error {
	ing, err := uc.ingredientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	if err := uc.ingredientRepo.Delete(id); err != nil {
		return err
	}
	uc.notifier.Notify(ctx, realtime.ChannelIngredients)
	return nil
}

// Movements historial de movimientos de stock de un ingrediente.
func (uc *IngredientUseCase) Movements(ingredientID string, limit, offset int) ([]dto.StockMovementResponse, error) {
	movs, err := uc.movementRepo.ListByIngredient(ingredientID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.NewStockMovementResponse(m))
	}
	return out, nil
}

package usecase

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

// MenuUseCase gestiona la carta. La disponibilidad de un plato no se edita a
// mano: se deriva del stock de los ingredientes de su receta y se recalcula
// cuando el dominio stock notifica un cambio.
type MenuUseCase struct {
	menuRepo       repository.MenuItemRepository
	ingredientRepo repository.IngredientRepository
	notifier       realtime.Notifier
	log            *logger.Logger
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(
	menuRepo repository.MenuItemRepository,
	ingredientRepo repository.IngredientRepository,
	notifier realtime.Notifier,
	log *logger.Logger,
) *MenuUseCase {
	return &MenuUseCase{
		menuRepo:       menuRepo,
		ingredientRepo: ingredientRepo,
		notifier:       notifier,
		log:            log,
	}
}

// Create da de alta un plato. La disponibilidad inicial se calcula contra el
// stock actual de su receta.
func (uc *MenuUseCase) Create(ctx context.Context, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.MenuItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		PrepMinutes: in.PrepMinutes,
		Station:     in.Station,
		Recipe:      toRecipe(in.Recipe),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	available, err := uc.recipeAvailable(item.Recipe)
	if err != nil {
		return nil, err
	}
	item.Available = available

	if err := uc.menuRepo.Create(item); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelMenu)
	resp := dto.NewMenuItemResponse(item)
	return &resp, nil
}

// GetByID un plato con su receta.
func (uc *MenuUseCase) GetByID(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewMenuItemResponse(item)
	return &resp, nil
}

// List platos paginados. Con term no vacío busca por nombre normalizado
// (sin tildes, case-insensitive).
func (uc *MenuUseCase) List(term string, limit, offset int) (*dto.MenuItemListResponse, error) {
	var (
		items []*entity.MenuItem
		err   error
	)
	if term != "" {
		items, err = uc.menuRepo.Search(term, limit, offset)
	} else {
		items, err = uc.menuRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewMenuItemResponse(it))
	}
	return &dto.MenuItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update campos del plato. Si cambia la receta se recalcula la disponibilidad.
func (uc *MenuUseCase) Update(ctx context.Context, id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.PrepMinutes != nil {
		item.PrepMinutes = *in.PrepMinutes
	}
	if in.Station != nil {
		item.Station = *in.Station
	}
	if in.Recipe != nil {
		item.Recipe = toRecipe(in.Recipe)
		available, err := uc.recipeAvailable(item.Recipe)
		if err != nil {
			return nil, err
		}
		item.Available = available
	}
	item.UpdatedAt = time.Now()

	if err := uc.menuRepo.Update(item); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelMenu)
	resp := dto.NewMenuItemResponse(item)
	return &resp, nil
}

// Delete elimina un plato.
func (uc *MenuUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := uc.menuRepo.Delete(id); err != nil {
		return err
	}
	uc.notifier.Notify(ctx, realtime.ChannelMenu)
	return nil
}

// RefreshAvailability recalcula la disponibilidad de toda la carta contra el
// stock actual. Se registra como callback del dominio stock en el broker: cada
// cambio de ingredientes deja la carta consistente sin intervención manual.
func (uc *MenuUseCase) RefreshAvailability(ctx context.Context) error {
	items, err := uc.menuRepo.List(0, 0)
	if err != nil {
		return err
	}
	changed := false
	for _, item := range items {
		available, err := uc.recipeAvailable(item.Recipe)
		if err != nil {
			return err
		}
		if available == item.Available {
			continue
		}
		if err := uc.menuRepo.SetAvailability(item.ID, available); err != nil {
			return err
		}
		changed = true
		uc.log.Info().
			Str("menu_item_id", item.ID).
			Bool("available", available).
			Msg("disponibilidad de plato recalculada")
	}
	if changed {
		uc.notifier.Notify(ctx, realtime.ChannelMenu)
	}
	return nil
}

// recipeAvailable un plato está disponible si hay stock para al menos una
// porción de cada línea de su receta. Receta vacía cuenta como disponible.
func (uc *MenuUseCase) recipeAvailable(recipe []entity.RecipeLine) (bool, error) {
	for _, line := range recipe {
		ing, err := uc.ingredientRepo.GetByID(line.IngredientID)
		if err != nil {
			return false, err
		}
		if ing == nil || ing.CurrentStock.LessThan(line.Quantity) {
			return false, nil
		}
	}
	return true, nil
}

func toRecipe(lines []dto.RecipeLineDTO) []entity.RecipeLine {
	recipe := make([]entity.RecipeLine, 0, len(lines))
	for _, l := range lines {
		recipe = append(recipe, entity.RecipeLine{IngredientID: l.IngredientID, Quantity: l.Quantity})
	}
	return recipe
}

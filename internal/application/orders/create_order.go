package orders

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/monitoring"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// CreateOrderUseCase crea comandas de forma transaccional: valida la carta,
// descuenta el stock de los ingredientes según receta (SELECT FOR UPDATE),
// escribe cabecera y líneas y genera un ticket de cocina por línea.
type CreateOrderUseCase struct {
	txRunner TxRunner
	menuRepo repository.MenuItemRepository
	notifier realtime.Notifier
	taxPct   decimal.Decimal // impuesto al consumo, p.ej. 0.08
	log      *logger.Logger
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	menuRepo repository.MenuItemRepository,
	notifier realtime.Notifier,
	taxPct decimal.Decimal,
	log *logger.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner: txRunner,
		menuRepo: menuRepo,
		notifier: notifier,
		taxPct:   taxPct,
		log:      log,
	}
}

// Create valida y persiste una orden. Si algún ingrediente no alcanza para
// las recetas solicitadas devuelve domain.ErrInsufficientStock y no persiste
// nada (la transacción hace rollback completo).
func (uc *CreateOrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	orderType := entity.OrderType(in.Type)
	switch orderType {
	case entity.OrderTypeDineIn, entity.OrderTypeTakeout, entity.OrderTypeDelivery:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.StaffID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if orderType == entity.OrderTypeDineIn && in.TableID == nil {
		return nil, domain.ErrInvalidInput
	}

	// Carga la carta y acumula el consumo de ingredientes por receta.
	type line struct {
		item *entity.MenuItem
		req  dto.OrderItemRequest
	}
	lines := make([]line, 0, len(in.Items))
	needed := make(map[string]decimal.Decimal)
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		menuItem, err := uc.menuRepo.GetByID(it.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, domain.ErrNotFound
		}
		if !menuItem.Available {
			return nil, domain.ErrInvalidInput
		}
		qty := decimal.NewFromInt(int64(it.Quantity))
		for _, rl := range menuItem.Recipe {
			needed[rl.IngredientID] = needed[rl.IngredientID].Add(rl.Quantity.Mul(qty))
		}
		lines = append(lines, line{item: menuItem, req: it})
	}

	// Orden estable de bloqueo para evitar deadlocks entre órdenes concurrentes.
	ingredientIDs := make([]string, 0, len(needed))
	for id := range needed {
		ingredientIDs = append(ingredientIDs, id)
	}
	sort.Strings(ingredientIDs)

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		TableID:    in.TableID,
		CustomerID: in.CustomerID,
		StaffID:    in.StaffID,
		Type:       orderType,
		Status:     entity.OrderStatusOpen,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	subtotal := decimal.Zero
	tickets := make([]*entity.KitchenTicket, 0, len(lines))
	for _, l := range lines {
		item := entity.OrderItem{
			ID:         uuid.New().String(),
			OrderID:    order.ID,
			MenuItemID: l.item.ID,
			Name:       l.item.Name,
			Quantity:   l.req.Quantity,
			UnitPrice:  l.item.Price,
			Notes:      l.req.Notes,
		}
		order.Items = append(order.Items, item)
		subtotal = subtotal.Add(l.item.Price.Mul(decimal.NewFromInt(int64(l.req.Quantity))))

		tickets = append(tickets, &entity.KitchenTicket{
			ID:           uuid.New().String(),
			OrderID:      order.ID,
			OrderItemID:  item.ID,
			MenuItemName: l.item.Name,
			Station:      l.item.Station,
			Quantity:     l.req.Quantity,
			Notes:        l.req.Notes,
			Status:       entity.TicketStatusPending,
			CreatedAt:    now,
		})
	}
	order.Subtotal = subtotal
	order.Tax = subtotal.Mul(uc.taxPct).Round(2)
	order.Total = order.Subtotal.Add(order.Tax)

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		ticketRepo repository.KitchenTicketRepository,
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		for _, id := range ingredientIDs {
			ing, err := ingredientRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if ing == nil {
				return domain.ErrNotFound
			}
			qty := needed[id]
			if ing.CurrentStock.LessThan(qty) {
				return domain.ErrInsufficientStock
			}
			if err := ingredientRepo.UpdateStock(id, ing.CurrentStock.Sub(qty)); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:           uuid.New().String(),
				IngredientID: id,
				Type:         entity.MovementTypeORDER,
				Quantity:     qty.Neg(),
				ReferenceID:  order.ID,
				CreatedBy:    in.StaffID,
				CreatedAt:    now,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		return ticketRepo.CreateBatch(tickets)
	})
	if err != nil {
		return nil, err
	}

	monitoring.OrdersCreated.Inc()
	uc.notifier.Notify(ctx, realtime.ChannelOrders)
	uc.notifier.Notify(ctx, realtime.ChannelKitchen)
	uc.notifier.Notify(ctx, realtime.ChannelIngredients)
	uc.log.Info().
		Str("order_id", order.ID).
		Int("items", len(order.Items)).
		Str("total", order.Total.String()).
		Msg("orden creada")

	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

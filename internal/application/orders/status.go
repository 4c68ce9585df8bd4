package orders

import (
	"context"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// OrderUseCase consultas y cambio de estado de órdenes ya creadas.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	notifier  realtime.Notifier
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, notifier realtime.Notifier) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, notifier: notifier}
}

// GetByID una orden con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

// List órdenes, opcionalmente filtradas por estado.
func (uc *OrderUseCase) List(status string, limit, offset int) (*dto.OrderListResponse, error) {
	orders, err := uc.orderRepo.List(entity.OrderStatus(status), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.NewOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SetStatus avanza el estado de la orden validando el flujo en la entidad.
// Transiciones ilegales devuelven domain.ErrInvalidTransition.
func (uc *OrderUseCase) SetStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := order.Transition(entity.OrderStatus(status)); err != nil {
		return nil, err
	}
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.UpdateStatus(order.ID, order.Status); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelOrders)
	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

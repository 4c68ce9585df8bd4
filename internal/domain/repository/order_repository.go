package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// OrderRepository puerto de persistencia para Order (cabecera + líneas).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(status entity.OrderStatus, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id string, status entity.OrderStatus) error
}

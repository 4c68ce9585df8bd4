package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// PaymentMethodRepository puerto de persistencia para los medios de pago
// configurados.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	List(enabledOnly bool) ([]*entity.PaymentMethod, error)
	Update(method *entity.PaymentMethod) error
}

// PaymentTransactionRepository puerto de persistencia para pagos registrados.
type PaymentTransactionRepository interface {
	Create(tx *entity.PaymentTransaction) error
	ListByOrder(orderID string) ([]*entity.PaymentTransaction, error)
}

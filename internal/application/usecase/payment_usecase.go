package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// PaymentUseCase medios de pago y registro de pagos contra órdenes. Cuando los
// pagos acumulados cubren el total, la orden pasa a paid y se registra la
// visita del cliente si la orden tiene uno asociado.
type PaymentUseCase struct {
	methodRepo   repository.PaymentMethodRepository
	txRepo       repository.PaymentTransactionRepository
	orderRepo    repository.OrderRepository
	customerUC   *CustomerUseCase
	notifier     realtime.Notifier
	log          *logger.Logger
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	methodRepo repository.PaymentMethodRepository,
	txRepo repository.PaymentTransactionRepository,
	orderRepo repository.OrderRepository,
	customerUC *CustomerUseCase,
	notifier realtime.Notifier,
	log *logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		methodRepo: methodRepo,
		txRepo:     txRepo,
		orderRepo:  orderRepo,
		customerUC: customerUC,
		notifier:   notifier,
		log:        log,
	}
}

// CreateMethod configura un medio de pago habilitado.
func (uc *PaymentUseCase) CreateMethod(ctx context.Context, in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Name == "" || in.Kind == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	method := &entity.PaymentMethod{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Kind:         in.Kind,
		SurchargePct: in.SurchargePct,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.methodRepo.Create(method); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelPayments)
	resp := dto.NewPaymentMethodResponse(method)
	return &resp, nil
}

// ListMethods medios de pago, opcionalmente solo habilitados.
func (uc *PaymentUseCase) ListMethods(enabledOnly bool) ([]dto.PaymentMethodResponse, error) {
	methods, err := uc.methodRepo.List(enabledOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, dto.NewPaymentMethodResponse(m))
	}
	return out, nil
}

// UpdateMethod campos de un medio de pago.
func (uc *PaymentUseCase) UpdateMethod(ctx context.Context, id string, in dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method, err := uc.methodRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		method.Name = *in.Name
	}
	if in.SurchargePct != nil {
		method.SurchargePct = *in.SurchargePct
	}
	if in.Enabled != nil {
		method.Enabled = *in.Enabled
	}
	method.UpdatedAt = time.Now()
	if err := uc.methodRepo.Update(method); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelPayments)
	resp := dto.NewPaymentMethodResponse(method)
	return &resp, nil
}

// Register registra un pago contra una orden en estado ready. Si con este
// pago los pagos acumulados (sin propinas) cubren el total, la orden pasa a
// paid.
func (uc *PaymentUseCase) Register(ctx context.Context, orderID string, in dto.RegisterPaymentRequest) (*dto.PaymentTransactionResponse, error) {
	if !in.Amount.IsPositive() || in.Tip.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusReady {
		return nil, domain.ErrConflict
	}
	method, err := uc.methodRepo.GetByID(in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method == nil || !method.Enabled {
		return nil, domain.ErrInvalidInput
	}

	tx := &entity.PaymentTransaction{
		ID:              uuid.New().String(),
		OrderID:         orderID,
		PaymentMethodID: method.ID,
		Amount:          in.Amount,
		Tip:             in.Tip,
		Reference:       in.Reference,
		CreatedBy:       in.CreatedBy,
		CreatedAt:       time.Now(),
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}

	paid, err := uc.totalPaid(orderID)
	if err != nil {
		return nil, err
	}
	if paid.GreaterThanOrEqual(order.Total) {
		if err := order.Transition(entity.OrderStatusPaid); err != nil {
			return nil, err
		}
		if err := uc.orderRepo.UpdateStatus(order.ID, order.Status); err != nil {
			return nil, err
		}
		uc.notifier.Notify(ctx, realtime.ChannelOrders)
		uc.notifier.Notify(ctx, realtime.ChannelSales)
		if order.CustomerID != nil {
			if err := uc.customerUC.RecordVisit(ctx, *order.CustomerID); err != nil {
				uc.log.Warn().Err(err).Str("customer_id", *order.CustomerID).Msg("registrar visita del cliente")
			}
		}
		uc.log.Info().
			Str("order_id", order.ID).
			Str("total", order.Total.String()).
			Msg("orden pagada")
	}

	uc.notifier.Notify(ctx, realtime.ChannelPayments)
	resp := dto.NewPaymentTransactionResponse(tx)
	return &resp, nil
}

// ListByOrder pagos registrados contra una orden.
func (uc *PaymentUseCase) ListByOrder(orderID string) ([]dto.PaymentTransactionResponse, error) {
	txs, err := uc.txRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.NewPaymentTransactionResponse(tx))
	}
	return out, nil
}

func (uc *PaymentUseCase) totalPaid(orderID string) (decimal.Decimal, error) {
	txs, err := uc.txRepo.ListByOrder(orderID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total, nil
}

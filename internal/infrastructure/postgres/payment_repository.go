package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
var _ repository.PaymentTransactionRepository = (*PaymentTransactionRepo)(nil)

// PaymentMethodRepo implementación de PaymentMethodRepository (usable con pool o tx).
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste un medio de pago.
func (r *PaymentMethodRepo) Create(m *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (id, name, kind, surcharge_pct, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Kind, m.SurchargePct, m.Enabled, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID obtiene un medio de pago por ID.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `SELECT id, name, kind, surcharge_pct, enabled, created_at, updated_at FROM payment_methods WHERE id = $1`
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Kind, &m.SurchargePct, &m.Enabled, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

// List medios de pago, opcionalmente solo habilitados.
func (r *PaymentMethodRepo) List(enabledOnly bool) ([]*entity.PaymentMethod, error) {
	ctx := context.Background()
	query := `SELECT id, name, kind, surcharge_pct, enabled, created_at, updated_at FROM payment_methods`
	var (
		rows pgx.Rows
		err  error
	)
	if enabledOnly {
		rows, err = r.q.Query(ctx, query+` WHERE enabled ORDER BY name`)
	} else {
		rows, err = r.q.Query(ctx, query+` ORDER BY name`)
	}
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Kind, &m.SurchargePct, &m.Enabled, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un medio de pago.
func (r *PaymentMethodRepo) Update(m *entity.PaymentMethod) error {
	query := `
		UPDATE payment_methods SET name = $2, kind = $3, surcharge_pct = $4, enabled = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.Name, m.Kind, m.SurchargePct, m.Enabled, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

// PaymentTransactionRepo implementación de PaymentTransactionRepository (usable con pool o tx).
type PaymentTransactionRepo struct {
	q Querier
}

// NewPaymentTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentTransactionRepository(q Querier) *PaymentTransactionRepo {
	return &PaymentTransactionRepo{q: q}
}

// Create persiste un pago.
func (r *PaymentTransactionRepo) Create(tx *entity.PaymentTransaction) error {
	query := `
		INSERT INTO payment_transactions (id, order_id, payment_method_id, amount, tip, reference, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.OrderID, tx.PaymentMethodID, tx.Amount, tx.Tip, tx.Reference, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment transaction: %w", err)
	}
	return nil
}

// ListByOrder pagos registrados contra una orden.
func (r *PaymentTransactionRepo) ListByOrder(orderID string) ([]*entity.PaymentTransaction, error) {
	query := `
		SELECT id, order_id, payment_method_id, amount, tip, reference, created_by, created_at
		FROM payment_transactions WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payment transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentTransaction
	for rows.Next() {
		var tx entity.PaymentTransaction
		if err := rows.Scan(&tx.ID, &tx.OrderID, &tx.PaymentMethodID, &tx.Amount, &tx.Tip, &tx.Reference, &tx.CreatedBy, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}

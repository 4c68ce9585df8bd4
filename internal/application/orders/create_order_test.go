package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/orders"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// ── fakes en memoria ─────────────────────────────────────────────────────────

type memMenuRepo struct {
	items map[string]*entity.MenuItem
}

func (m *memMenuRepo) Create(i *entity.MenuItem) error { m.items[i.ID] = i; return nil }
func (m *memMenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	i, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return i, nil
}
func (m *memMenuRepo) List(limit, offset int) ([]*entity.MenuItem, error) { return nil, nil }
func (m *memMenuRepo) Search(term string, limit, offset int) ([]*entity.MenuItem, error) {
	return nil, nil
}
func (m *memMenuRepo) Update(i *entity.MenuItem) error            { m.items[i.ID] = i; return nil }
func (m *memMenuRepo) SetAvailability(id string, av bool) error   { m.items[id].Available = av; return nil }
func (m *memMenuRepo) Delete(id string) error                     { delete(m.items, id); return nil }

type memOrderRepo struct {
	orders map[string]*entity.Order
}

func (m *memOrderRepo) Create(o *entity.Order) error { m.orders[o.ID] = o; return nil }
func (m *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}
func (m *memOrderRepo) List(s entity.OrderStatus, limit, offset int) ([]*entity.Order, error) {
	return nil, nil
}
func (m *memOrderRepo) UpdateStatus(id string, s entity.OrderStatus) error {
	m.orders[id].Status = s
	return nil
}

type memTicketRepo struct {
	tickets []*entity.KitchenTicket
}

func (m *memTicketRepo) CreateBatch(ts []*entity.KitchenTicket) error {
	m.tickets = append(m.tickets, ts...)
	return nil
}
func (m *memTicketRepo) GetByID(id string) (*entity.KitchenTicket, error) { return nil, nil }
func (m *memTicketRepo) ListActive(station string) ([]*entity.KitchenTicket, error) {
	return m.tickets, nil
}
func (m *memTicketRepo) Update(t *entity.KitchenTicket) error { return nil }

type memIngredientRepo struct {
	items map[string]*entity.Ingredient
}

func (m *memIngredientRepo) Create(i *entity.Ingredient) error { m.items[i.ID] = i; return nil }
func (m *memIngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	i, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return i, nil
}
func (m *memIngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	return m.GetByID(id)
}
func (m *memIngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) { return nil, nil }
func (m *memIngredientRepo) ListAll() ([]*entity.Ingredient, error)               { return nil, nil }
func (m *memIngredientRepo) Update(i *entity.Ingredient) error                    { return nil }
func (m *memIngredientRepo) UpdateStock(id string, q decimal.Decimal) error {
	m.items[id].CurrentStock = q
	return nil
}
func (m *memIngredientRepo) Delete(id string) error { delete(m.items, id); return nil }

type memMovementRepo struct {
	movs []*entity.StockMovement
}

func (m *memMovementRepo) Create(mov *entity.StockMovement) error {
	m.movs = append(m.movs, mov)
	return nil
}
func (m *memMovementRepo) ListByIngredient(id string, limit, offset int) ([]*entity.StockMovement, error) {
	return m.movs, nil
}

// fakeTxRunner ejecuta fn directamente con los fakes; si fn falla, revierte el
// estado de ingredientes para simular el rollback.
type fakeTxRunner struct {
	orderRepo  *memOrderRepo
	ticketRepo *memTicketRepo
	ingRepo    *memIngredientRepo
	movRepo    *memMovementRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.OrderRepository,
	repository.KitchenTicketRepository,
	repository.IngredientRepository,
	repository.StockMovementRepository,
) error) error {
	backup := make(map[string]entity.Ingredient, len(f.ingRepo.items))
	for id, ing := range f.ingRepo.items {
		backup[id] = *ing
	}
	if err := fn(f.orderRepo, f.ticketRepo, f.ingRepo, f.movRepo); err != nil {
		for id := range f.ingRepo.items {
			restored := backup[id]
			f.ingRepo.items[id] = &restored
		}
		return err
	}
	return nil
}

// ── fixtures ─────────────────────────────────────────────────────────────────

func fixture() (*orders.CreateOrderUseCase, *fakeTxRunner, *memMenuRepo) {
	menu := &memMenuRepo{items: map[string]*entity.MenuItem{
		"hamburguesa": {
			ID:        "hamburguesa",
			Name:      "Hamburguesa de la casa",
			Price:     decimal.NewFromInt(25000),
			Available: true,
			Station:   "grill",
			Recipe: []entity.RecipeLine{
				{IngredientID: "carne", Quantity: decimal.NewFromFloat(0.2)},
				{IngredientID: "pan", Quantity: decimal.NewFromInt(1)},
			},
		},
	}}
	tx := &fakeTxRunner{
		orderRepo:  &memOrderRepo{orders: map[string]*entity.Order{}},
		ticketRepo: &memTicketRepo{},
		ingRepo: &memIngredientRepo{items: map[string]*entity.Ingredient{
			"carne": {ID: "carne", CurrentStock: decimal.NewFromInt(1)},
			"pan":   {ID: "pan", CurrentStock: decimal.NewFromInt(10)},
		}},
		movRepo: &memMovementRepo{},
	}
	uc := orders.NewCreateOrderUseCase(tx, menu, realtime.NopNotifier{}, decimal.NewFromFloat(0.08), logger.Nop())
	return uc, tx, menu
}

func dineIn(qty int) dto.CreateOrderRequest {
	table := "mesa-5"
	return dto.CreateOrderRequest{
		TableID: &table,
		StaffID: "mesero-1",
		Type:    "dine_in",
		Items:   []dto.OrderItemRequest{{MenuItemID: "hamburguesa", Quantity: qty}},
	}
}

// ── tests ────────────────────────────────────────────────────────────────────

// TestCreateOrder_DescuentaStockYGeneraTickets: una orden válida descuenta los
// ingredientes según receta, calcula totales con impuesto y deja un ticket de
// cocina por línea.
func TestCreateOrder_DescuentaStockYGeneraTickets(t *testing.T) {
	uc, tx, _ := fixture()

	out, err := uc.Create(context.Background(), dineIn(2))
	require.NoError(t, err)

	assert.Equal(t, "open", out.Status)
	assert.True(t, decimal.NewFromInt(50000).Equal(out.Subtotal))
	assert.True(t, decimal.NewFromInt(4000).Equal(out.Tax))
	assert.True(t, decimal.NewFromInt(54000).Equal(out.Total))

	// 2 porciones × 0.2 kg de carne = 0.4; quedaba 1.0 → 0.6
	assert.True(t, decimal.NewFromFloat(0.6).Equal(tx.ingRepo.items["carne"].CurrentStock))
	assert.True(t, decimal.NewFromInt(8).Equal(tx.ingRepo.items["pan"].CurrentStock))

	require.Len(t, tx.ticketRepo.tickets, 1)
	assert.Equal(t, "grill", tx.ticketRepo.tickets[0].Station)
	assert.Equal(t, entity.TicketStatusPending, tx.ticketRepo.tickets[0].Status)

	// Cada descuento queda en el historial como movimiento ORDER negativo.
	require.Len(t, tx.movRepo.movs, 2)
	for _, mov := range tx.movRepo.movs {
		assert.Equal(t, entity.MovementTypeORDER, mov.Type)
		assert.True(t, mov.Quantity.IsNegative())
		assert.Equal(t, out.ID, mov.ReferenceID)
	}
}

// TestCreateOrder_StockInsuficiente: si la receta pide más de lo disponible la
// orden no se crea y el stock queda intacto.
func TestCreateOrder_StockInsuficiente(t *testing.T) {
	uc, tx, _ := fixture()

	// 6 porciones × 0.2 = 1.2 kg de carne, solo hay 1.0
	_, err := uc.Create(context.Background(), dineIn(6))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, decimal.NewFromInt(1).Equal(tx.ingRepo.items["carne"].CurrentStock))
	assert.Empty(t, tx.orderRepo.orders)
	assert.Empty(t, tx.ticketRepo.tickets)
}

// TestCreateOrder_PlatoNoDisponible: un plato marcado no disponible rechaza la
// orden antes de abrir la transacción.
func TestCreateOrder_PlatoNoDisponible(t *testing.T) {
	uc, _, menu := fixture()
	menu.items["hamburguesa"].Available = false

	_, err := uc.Create(context.Background(), dineIn(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCreateOrder_DineInSinMesa: dine_in exige mesa.
func TestCreateOrder_DineInSinMesa(t *testing.T) {
	uc, _, _ := fixture()

	in := dineIn(1)
	in.TableID = nil
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

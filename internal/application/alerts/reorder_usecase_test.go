package alerts_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appalerts "github.com/jhoicas/Restaurante-api/internal/application/alerts"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// ── mocks en memoria ─────────────────────────────────────────────────────────

type memRuleRepo struct {
	rules map[string]*entity.ReorderRule
}

func newMemRuleRepo() *memRuleRepo {
	return &memRuleRepo{rules: make(map[string]*entity.ReorderRule)}
}

func (m *memRuleRepo) Create(r *entity.ReorderRule) error {
	cp := *r
	m.rules[r.ID] = &cp
	return nil
}

func (m *memRuleRepo) GetByID(id string) (*entity.ReorderRule, error) {
	r, ok := m.rules[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRuleRepo) List(limit, offset int) ([]*entity.ReorderRule, error) {
	out := make([]*entity.ReorderRule, 0, len(m.rules))
	for _, r := range m.rules {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRuleRepo) ListAutoPending() ([]*entity.ReorderRule, error) {
	var out []*entity.ReorderRule
	for _, r := range m.rules {
		if r.AutoReorderEnabled && r.Status == entity.ReorderStatusPending {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memRuleRepo) Update(r *entity.ReorderRule) error {
	cp := *r
	m.rules[r.ID] = &cp
	return nil
}

type memIngredientRepo struct {
	items map[string]*entity.Ingredient
}

func newMemIngredientRepo() *memIngredientRepo {
	return &memIngredientRepo{items: make(map[string]*entity.Ingredient)}
}

func (m *memIngredientRepo) Create(i *entity.Ingredient) error  { m.items[i.ID] = i; return nil }
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
func (m *memIngredientRepo) ListAll() ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(m.items))
	for _, i := range m.items {
		out = append(out, i)
	}
	return out, nil
}
func (m *memIngredientRepo) Update(i *entity.Ingredient) error { m.items[i.ID] = i; return nil }
func (m *memIngredientRepo) UpdateStock(id string, q decimal.Decimal) error {
	m.items[id].CurrentStock = q
	return nil
}
func (m *memIngredientRepo) Delete(id string) error { delete(m.items, id); return nil }

// ── helpers ──────────────────────────────────────────────────────────────────

func seedRule(repo *memRuleRepo, id string, status entity.ReorderStatus, auto bool, point float64, ingredientID string) {
	repo.rules[id] = &entity.ReorderRule{
		ID:                 id,
		IngredientID:       ingredientID,
		IngredientName:     ingredientID,
		Status:             status,
		AutoReorderEnabled: auto,
		ReorderPoint:       decimal.NewFromFloat(point),
		ReorderQuantity:    decimal.NewFromFloat(20),
	}
}

func seedIngredient(repo *memIngredientRepo, id string, stock float64, leadDays int) {
	repo.items[id] = &entity.Ingredient{
		ID:           id,
		Name:         id,
		CurrentStock: decimal.NewFromFloat(stock),
		LeadTimeDays: leadDays,
	}
}

func newUC(rules *memRuleRepo, ings *memIngredientRepo) *appalerts.ReorderUseCase {
	return appalerts.NewReorderUseCase(rules, ings, false, logger.Nop())
}

// ── ManualReorder ────────────────────────────────────────────────────────────

// TestManualReorder_DesdePending: pending → ordered, sella lastReorder y
// estima entrega a 2 días.
func TestManualReorder_DesdePending(t *testing.T) {
	rules, ings := newMemRuleRepo(), newMemIngredientRepo()
	seedRule(rules, "r1", entity.ReorderStatusPending, false, 5, "harina")
	uc := newUC(rules, ings)

	before := time.Now()
	out, err := uc.ManualReorder("r1")
	require.NoError(t, err)

	assert.Equal(t, "ordered", out.Status)
	require.NotNil(t, out.LastReorder)
	require.NotNil(t, out.EstimatedDelivery)
	wantDelivery := out.LastReorder.AddDate(0, 0, 2)
	assert.Equal(t, wantDelivery, *out.EstimatedDelivery)
	assert.False(t, out.LastReorder.Before(before.Truncate(time.Second)))
}

// TestManualReorder_RechazaYaOrdenado: una regla ya ordered no admite otro
// pedido; el guard es del motor, no de la UI.
func TestManualReorder_RechazaYaOrdenado(t *testing.T) {
	rules, ings := newMemRuleRepo(), newMemIngredientRepo()
	seedRule(rules, "r1", entity.ReorderStatusOrdered, false, 5, "harina")
	uc := newUC(rules, ings)

	_, err := uc.ManualReorder("r1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// TestManualReorder_DesdeDeliveredYCancelled: cualquier estado distinto de
// ordered admite reorden manual, incluidos delivered y cancelled.
func TestManualReorder_DesdeDeliveredYCancelled(t *testing.T) {
	for _, status := range []entity.ReorderStatus{entity.ReorderStatusDelivered, entity.ReorderStatusCancelled} {
		rules, ings := newMemRuleRepo(), newMemIngredientRepo()
		seedRule(rules, "r1", status, false, 5, "harina")
		uc := newUC(rules, ings)

		out, err := uc.ManualReorder("r1")
		require.NoError(t, err, "estado inicial %s", status)
		assert.Equal(t, "ordered", out.Status)
	}
}

func TestManualReorder_NoExiste(t *testing.T) {
	uc := newUC(newMemRuleRepo(), newMemIngredientRepo())
	_, err := uc.ManualReorder("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── ToggleAutoReorder ────────────────────────────────────────────────────────

// TestToggleAutoReorder: invierte el flag sin tocar el estado.
func TestToggleAutoReorder(t *testing.T) {
	rules, ings := newMemRuleRepo(), newMemIngredientRepo()
	seedRule(rules, "r1", entity.ReorderStatusPending, false, 5, "harina")
	uc := newUC(rules, ings)

	out, err := uc.ToggleAutoReorder("r1")
	require.NoError(t, err)
	assert.True(t, out.AutoReorderEnabled)
	assert.Equal(t, "pending", out.Status)

	out, err = uc.ToggleAutoReorder("r1")
	require.NoError(t, err)
	assert.False(t, out.AutoReorderEnabled)
}

// ── SetStatus ────────────────────────────────────────────────────────────────

// TestSetStatus_CaminoFeliz: ordered → delivered es válido; delivered →
// delivered no.
func TestSetStatus_CaminoFeliz(t *testing.T) {
	rules, ings := newMemRuleRepo(), newMemIngredientRepo()
	seedRule(rules, "r1", entity.ReorderStatusOrdered, false, 5, "harina")
	uc := newUC(rules, ings)

	out, err := uc.SetStatus("r1", entity.ReorderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, "delivered", out.Status)

	_, err = uc.SetStatus("r1", entity.ReorderStatusDelivered)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// TestSetStatus_CancelledDesdePendingYOrdered: cancelled es alcanzable desde
// pending y ordered; desde delivered no.
func TestSetStatus_CancelledDesdePendingYOrdered(t *testing.T) {
	for _, status := range []entity.ReorderStatus{entity.ReorderStatusPending, entity.ReorderStatusOrdered} {
		rules, ings := newMemRuleRepo(), newMemIngredientRepo()
		seedRule(rules, "r1", status, false, 5, "harina")
		uc := newUC(rules, ings)

		out, err := uc.SetStatus("r1", entity.ReorderStatusCancelled)
		require.NoError(t, err, "desde %s", status)
		assert.Equal(t, "cancelled", out.Status)
	}

	rules, ings := newMemRuleRepo(), newMemIngredientRepo()
	seedRule(rules, "r1", entity.ReorderStatusDelivered, false, 5, "harina")
	uc := newUC(rules, ings)
	_, err := uc.SetStatus("r1", entity.ReorderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ── EvaluateAutoReorders ─────────────────────────────────────────────────────

// TestEvaluateAutoReorders_DisparaBajoElPunto: la regla auto con stock en o
// bajo el punto de reorden pasa a ordered; la entrega estimada usa el lead
// time del ingrediente.
func TestEvaluateAutoReorders_DisparaBajoElPunto(t *testing.T) {
	rules, ings := newMemRuleRepo(), newMemIngredientRepo()
	seedIngredient(ings, "harina", 4, 3) // stock 4 <= punto 5
	seedRule(rules, "r1", entity.ReorderStatusPending, true, 5, "harina")
	uc := newUC(rules, ings)

	n, err := uc.EvaluateAutoReorders()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, _ := rules.GetByID("r1")
	assert.Equal(t, entity.ReorderStatusOrdered, got.Status)
	require.NotNil(t, got.EstimatedDelivery)
	require.NotNil(t, got.LastReorder)
	assert.Equal(t, got.LastReorder.AddDate(0, 0, 3), *got.EstimatedDelivery)
}

// TestEvaluateAutoReorders_NoDisparaSobreElPunto: con stock sobre el punto la
// regla queda intacta.
func TestEvaluateAutoReorders_NoDisparaSobreElPunto(t *testing.T) {
	rules, ings := newMemRuleRepo(), newMemIngredientRepo()
	seedIngredient(ings, "harina", 50, 3)
	seedRule(rules, "r1", entity.ReorderStatusPending, true, 5, "harina")
	uc := newUC(rules, ings)

	n, err := uc.EvaluateAutoReorders()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got, _ := rules.GetByID("r1")
	assert.Equal(t, entity.ReorderStatusPending, got.Status)
}

// TestEvaluateAutoReorders_IgnoraManualYNoPending: reglas sin auto o que no
// están pending no se evalúan.
func TestEvaluateAutoReorders_IgnoraManualYNoPending(t *testing.T) {
	rules, ings := newMemRuleRepo(), newMemIngredientRepo()
	seedIngredient(ings, "harina", 1, 2)
	seedRule(rules, "manual", entity.ReorderStatusPending, false, 5, "harina")
	seedRule(rules, "ya-ordenada", entity.ReorderStatusOrdered, true, 5, "harina")
	uc := newUC(rules, ings)

	n, err := uc.EvaluateAutoReorders()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// ── Create ───────────────────────────────────────────────────────────────────

// TestCreateRule_DefaultGlobal: sin flag explícito la regla hereda el default
// global de auto-reorden; el proveedor cae al del ingrediente.
func TestCreateRule_DefaultGlobal(t *testing.T) {
	rules, ings := newMemRuleRepo(), newMemIngredientRepo()
	seedIngredient(ings, "harina", 50, 3)
	ings.items["harina"].Supplier = "Molinos SA"
	uc := appalerts.NewReorderUseCase(rules, ings, true, logger.Nop())

	out, err := uc.Create(dto.CreateReorderRuleRequest{
		IngredientID: "harina",
		ReorderPoint: decimal.NewFromFloat(5),
	})
	require.NoError(t, err)
	assert.True(t, out.AutoReorderEnabled)
	assert.Equal(t, "pending", out.Status)
	assert.Equal(t, "Molinos SA", out.Supplier)
}

func TestCreateRule_IngredienteNoExiste(t *testing.T) {
	uc := newUC(newMemRuleRepo(), newMemIngredientRepo())
	_, err := uc.Create(dto.CreateReorderRuleRequest{IngredientID: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

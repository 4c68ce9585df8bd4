package alerts_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain/alerts"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func ing(name string, stock, min, usage float64, leadDays int) entity.Ingredient {
	return entity.Ingredient{
		ID:           name,
		Name:         name,
		CurrentStock: decimal.NewFromFloat(stock),
		MinimumStock: decimal.NewFromFloat(min),
		DailyUsage:   decimal.NewFromFloat(usage),
		LeadTimeDays: leadDays,
	}
}

func settings(threshold float64, warningDays int) alerts.Settings {
	return alerts.Settings{
		LowStockThreshold: decimal.NewFromFloat(threshold),
		ExpiryWarningDays: warningDays,
	}
}

// ── LowStock ─────────────────────────────────────────────────────────────────

// TestLowStock_BajoMinimoSiempreIncluido: si CurrentStock <= MinimumStock el
// ingrediente aparece sin importar el umbral global (monotonicidad).
func TestLowStock_BajoMinimoSiempreIncluido(t *testing.T) {
	items := []entity.Ingredient{ing("harina", 5, 10, 1, 1)}

	for _, threshold := range []float64{0, 1, 100} {
		got := alerts.LowStock(items, settings(threshold, 7))
		require.Len(t, got, 1, "threshold=%v", threshold)
		assert.Equal(t, "harina", got[0].Name)
	}
}

// TestLowStock_UmbralGlobal: el umbral global marca bajo aunque el ingrediente
// esté sobre su propio mínimo.
func TestLowStock_UmbralGlobal(t *testing.T) {
	items := []entity.Ingredient{
		ing("sal", 8, 2, 0.1, 1),    // sobre su mínimo, bajo el umbral 10
		ing("aceite", 50, 2, 1, 1),  // sobre ambos
	}
	got := alerts.LowStock(items, settings(10, 7))
	require.Len(t, got, 1)
	assert.Equal(t, "sal", got[0].Name)
}

// TestLowStock_ConservaOrden: el resultado conserva el orden del snapshot.
func TestLowStock_ConservaOrden(t *testing.T) {
	items := []entity.Ingredient{
		ing("c", 1, 10, 1, 1),
		ing("a", 2, 10, 1, 1),
		ing("b", 3, 10, 1, 1),
	}
	got := alerts.LowStock(items, settings(0, 7))
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Name)
	assert.Equal(t, "a", got[1].Name)
	assert.Equal(t, "b", got[2].Name)
}

func TestLowStock_EntradaVacia(t *testing.T) {
	got := alerts.LowStock(nil, settings(10, 7))
	assert.Empty(t, got)
}

// ── Expiring ─────────────────────────────────────────────────────────────────

// TestExpiring_NoPerecederoExcluido: un no perecedero nunca aparece, incluso
// con fecha de vencimiento cargada dentro del horizonte.
func TestExpiring_NoPerecederoExcluido(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 2)
	it := ing("arroz", 10, 2, 1, 1)
	it.IsPerishable = false
	it.ExpiryDate = &soon

	got := alerts.Expiring([]entity.Ingredient{it}, settings(10, 7), now)
	assert.Empty(t, got)
}

// TestExpiring_DentroDelHorizonte: perecedero que vence en 5 días con horizonte
// de 7 se incluye; el mismo ingrediente ya vencido (ayer) se excluye porque lo
// vencido es merma, no "por vencer".
func TestExpiring_DentroDelHorizonte(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	in5 := now.AddDate(0, 0, 5)
	fresh := ing("leche", 10, 2, 1, 1)
	fresh.IsPerishable = true
	fresh.ExpiryDate = &in5

	yesterday := now.AddDate(0, 0, -1)
	expired := ing("crema", 10, 2, 1, 1)
	expired.IsPerishable = true
	expired.ExpiryDate = &yesterday

	got := alerts.Expiring([]entity.Ingredient{fresh, expired}, settings(10, 7), now)
	require.Len(t, got, 1)
	assert.Equal(t, "leche", got[0].Name)
}

// TestExpiring_VenceHoyIncluido: días hasta vencer == 0 cuenta como por vencer.
func TestExpiring_VenceHoyIncluido(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	today := now // mismo instante: ceil(0/24h) = 0
	it := ing("pescado", 4, 1, 1, 1)
	it.IsPerishable = true
	it.ExpiryDate = &today

	got := alerts.Expiring([]entity.Ingredient{it}, settings(10, 7), now)
	require.Len(t, got, 1)
}

// ── Predictions ──────────────────────────────────────────────────────────────

// TestPredictions_SinConsumoNoAparece: DailyUsage = 0 produce el sentinela 999,
// que queda fuera del horizonte de 14 días.
func TestPredictions_SinConsumoNoAparece(t *testing.T) {
	now := time.Now()
	items := []entity.Ingredient{ing("azúcar", 100, 5, 0, 3)}
	got := alerts.Predictions(items, now)
	assert.Empty(t, got)
}

// TestPredictions_EscenarioCritico: stock 3, consumo 2.5/día, lead 2 días →
// floor(3/2.5) = 1 día y urgencia critical (1 <= 2). También debe salir en
// low-stock (3 <= 10) y dentro del horizonte (1 <= 14).
func TestPredictions_EscenarioCritico(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	it := ing("tomate", 3, 10, 2.5, 2)

	preds := alerts.Predictions([]entity.Ingredient{it}, now)
	require.Len(t, preds, 1)
	assert.Equal(t, 1, preds[0].DaysUntilStockout)
	assert.Equal(t, alerts.UrgencyCritical, preds[0].Urgency)
	assert.Equal(t, now.AddDate(0, 0, 1), preds[0].StockoutDate)

	low := alerts.LowStock([]entity.Ingredient{it}, settings(0, 7))
	require.Len(t, low, 1)
}

// TestPredictions_FronteraMedium: stock 5, consumo 0.8/día, lead 3 →
// floor(5/0.8) = 6 días; lead+2 = 5, y 6 > 5, así que la urgencia es medium
// (no high: la aritmética de frontera importa).
func TestPredictions_FronteraMedium(t *testing.T) {
	now := time.Now()
	it := ing("queso", 5, 8, 0.8, 3)

	preds := alerts.Predictions([]entity.Ingredient{it}, now)
	require.Len(t, preds, 1)
	assert.Equal(t, 6, preds[0].DaysUntilStockout)
	assert.Equal(t, alerts.UrgencyMedium, preds[0].Urgency)
}

// TestPredictions_FronteraHigh: days == lead+1 y days == lead+2 son high;
// days == lead es critical; days == lead+3 es medium. Partición total y
// mutuamente excluyente.
func TestPredictions_FronteraHigh(t *testing.T) {
	now := time.Now()
	cases := []struct {
		stock float64 // consumo 1/día → days = floor(stock)
		want  alerts.Urgency
	}{
		{3, alerts.UrgencyCritical}, // days 3 == lead 3
		{4, alerts.UrgencyHigh},     // lead+1
		{5, alerts.UrgencyHigh},     // lead+2
		{6, alerts.UrgencyMedium},   // lead+3
	}
	for _, tc := range cases {
		preds := alerts.Predictions([]entity.Ingredient{ing("x", tc.stock, 1, 1, 3)}, now)
		require.Len(t, preds, 1, "stock=%v", tc.stock)
		assert.Equal(t, tc.want, preds[0].Urgency, "stock=%v", tc.stock)
	}
}

// TestPredictions_FueraDeHorizonte: 15+ días de stock no se reporta.
func TestPredictions_FueraDeHorizonte(t *testing.T) {
	now := time.Now()
	inside := ing("dentro", 14, 1, 1, 2)   // 14 días, justo en el borde
	outside := ing("fuera", 15, 1, 1, 2)   // 15 días, fuera

	preds := alerts.Predictions([]entity.Ingredient{inside, outside}, now)
	require.Len(t, preds, 1)
	assert.Equal(t, "dentro", preds[0].Ingredient.Name)
	assert.Equal(t, 14, preds[0].DaysUntilStockout)
}

// TestPredictions_FloorPesimista: 1.9 días de stock se reporta como 1 día.
func TestPredictions_FloorPesimista(t *testing.T) {
	now := time.Now()
	it := ing("cebolla", 1.9, 1, 1, 0)
	preds := alerts.Predictions([]entity.Ingredient{it}, now)
	require.Len(t, preds, 1)
	assert.Equal(t, 1, preds[0].DaysUntilStockout)
}

// TestPredictions_StockNegativoDegrada: stock negativo se trata como 0 en vez
// de fallar (capa de presentación, funciones totales).
func TestPredictions_StockNegativoDegrada(t *testing.T) {
	now := time.Now()
	it := ing("mala-data", -4, 1, 2, 1)
	preds := alerts.Predictions([]entity.Ingredient{it}, now)
	require.Len(t, preds, 1)
	assert.Equal(t, 0, preds[0].DaysUntilStockout)
	assert.Equal(t, alerts.UrgencyCritical, preds[0].Urgency)
}

// TestPredictions_NoMutaEntrada: el snapshot de entrada queda intacto.
func TestPredictions_NoMutaEntrada(t *testing.T) {
	now := time.Now()
	items := []entity.Ingredient{ing("papas", 3, 10, 2.5, 2)}
	before := items[0].CurrentStock.String()
	_ = alerts.Predictions(items, now)
	assert.Equal(t, before, items[0].CurrentStock.String())
}

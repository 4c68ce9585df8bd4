package alerts

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// Motor de alertas de stock: funciones puras sobre un snapshot de ingredientes.
// No hace I/O, no muta la entrada y nunca falla: valores faltantes o negativos
// degradan a un resultado numérico razonable porque esto alimenta un tablero,
// no un sistema de registro.

const (
	// StockoutFarFuture sentinela "sin consumo, sin riesgo de quiebre".
	StockoutFarFuture = 999
	// predictionHorizonDays horizonte de predicción: quiebres a más de dos
	// semanas no se reportan para no inundar el tablero.
	predictionHorizonDays = 14
)

// Urgency clasificación de una predicción de quiebre frente al lead time.
type Urgency string

const (
	UrgencyCritical Urgency = "critical" // quiebre antes de que llegue un pedido hecho hoy
	UrgencyHigh     Urgency = "high"     // quiebre dentro de lead time + 2 días
	UrgencyMedium   Urgency = "medium"
)

// Settings configuración del motor de alertas.
type Settings struct {
	// LowStockThreshold piso global: stock igual o menor se marca bajo,
	// independiente del mínimo propio del ingrediente.
	LowStockThreshold decimal.Decimal
	// ExpiryWarningDays horizonte en días para marcar perecederos por vencer.
	ExpiryWarningDays int
	// AutoReorderDefault default para reglas nuevas; el motor no lo consulta.
	AutoReorderDefault bool
}

// Prediction predicción de quiebre de stock para un ingrediente. Derivada y
// efímera: se recalcula en cada invocación y no se persiste.
type Prediction struct {
	Ingredient        entity.Ingredient
	DaysUntilStockout int
	StockoutDate      time.Time
	Urgency           Urgency
}

// LowStock devuelve los ingredientes con stock bajo: CurrentStock <= MinimumStock
// o CurrentStock <= Settings.LowStockThreshold. Conserva el orden de entrada.
func LowStock(items []entity.Ingredient, s Settings) []entity.Ingredient {
	out := make([]entity.Ingredient, 0)
	for _, it := range items {
		if it.CurrentStock.LessThanOrEqual(it.MinimumStock) ||
			it.CurrentStock.LessThanOrEqual(s.LowStockThreshold) {
			out = append(out, it)
		}
	}
	return out
}

// Expiring devuelve los perecederos que vencen dentro de ExpiryWarningDays.
// Lo ya vencido (días < 0) se excluye: el stock vencido es un problema de
// merma/desecho, no de "por vencer". Los no perecederos nunca se incluyen,
// tengan o no fecha de vencimiento cargada.
func Expiring(items []entity.Ingredient, s Settings, now time.Time) []entity.Ingredient {
	out := make([]entity.Ingredient, 0)
	for _, it := range items {
		if !it.IsPerishable || it.ExpiryDate == nil {
			continue
		}
		days := daysUntilExpiry(*it.ExpiryDate, now)
		if days >= 0 && days <= s.ExpiryWarningDays {
			out = append(out, it)
		}
	}
	return out
}

// Predictions calcula los quiebres de stock proyectados dentro del horizonte de
// 14 días. daysUntilStockout = floor(CurrentStock / DailyUsage); el floor es
// deliberadamente pesimista: 1.9 días de stock se reporta como 1 día.
// Sin consumo diario no hay riesgo: el sentinela 999 queda fuera del horizonte.
func Predictions(items []entity.Ingredient, now time.Time) []Prediction {
	out := make([]Prediction, 0)
	for _, it := range items {
		days := daysUntilStockout(it)
		if days > predictionHorizonDays {
			continue
		}
		out = append(out, Prediction{
			Ingredient:        it,
			DaysUntilStockout: days,
			StockoutDate:      now.AddDate(0, 0, days),
			Urgency:           classify(days, it.LeadTimeDays),
		})
	}
	return out
}

// daysUntilStockout días hasta quiebre. Stock negativo se trata como 0;
// consumo cero o negativo devuelve el sentinela.
func daysUntilStockout(it entity.Ingredient) int {
	if it.DailyUsage.Sign() <= 0 {
		return StockoutFarFuture
	}
	stock := it.CurrentStock
	if stock.Sign() < 0 {
		stock = decimal.Zero
	}
	days := stock.Div(it.DailyUsage).Floor().IntPart()
	if days > StockoutFarFuture {
		return StockoutFarFuture
	}
	return int(days)
}

// classify urgencia total y mutuamente excluyente respecto al lead time:
// critical si days <= lead, high si lead < days <= lead+2, medium el resto.
func classify(days, leadTimeDays int) Urgency {
	switch {
	case days <= leadTimeDays:
		return UrgencyCritical
	case days <= leadTimeDays+2:
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}

// daysUntilExpiry ceil((expiry - now) / 24h); negativo si ya venció.
func daysUntilExpiry(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPredictionResponse predicción de quiebre de stock de un ingrediente.
type StockPredictionResponse struct {
	Ingredient        IngredientResponse `json:"ingredient"`
	DaysUntilStockout int                `json:"days_until_stockout"`
	StockoutDate      time.Time          `json:"stockout_date"`
	Urgency           string             `json:"urgency"` // critical | high | medium
}

// AlertsOverviewResponse resumen del tablero de alertas.
type AlertsOverviewResponse struct {
	LowStock    []IngredientResponse      `json:"low_stock"`
	Expiring    []IngredientResponse      `json:"expiring"`
	Predictions []StockPredictionResponse `json:"predictions"`
	SyncStatus  string                    `json:"sync_status"` // live | disconnected
}

// ReorderRuleResponse una regla de reorden.
type ReorderRuleResponse struct {
	ID                 string          `json:"id"`
	IngredientID       string          `json:"ingredient_id"`
	IngredientName     string          `json:"ingredient_name"`
	Supplier           string          `json:"supplier"`
	ReorderPoint       decimal.Decimal `json:"reorder_point"`
	ReorderQuantity    decimal.Decimal `json:"reorder_quantity"`
	AutoReorderEnabled bool            `json:"auto_reorder_enabled"`
	LastReorder        *time.Time      `json:"last_reorder,omitempty"`
	Status             string          `json:"status"`
	EstimatedDelivery  *time.Time      `json:"estimated_delivery,omitempty"`
	Cost               decimal.Decimal `json:"cost"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// CreateReorderRuleRequest entrada para crear una regla de reorden.
type CreateReorderRuleRequest struct {
	IngredientID       string          `json:"ingredient_id" validate:"required"`
	Supplier           string          `json:"supplier"`
	ReorderPoint       decimal.Decimal `json:"reorder_point"`
	ReorderQuantity    decimal.Decimal `json:"reorder_quantity"`
	AutoReorderEnabled *bool           `json:"auto_reorder_enabled"` // nil → default global
	Cost               decimal.Decimal `json:"cost"`
}

// ReorderRuleListResponse lista paginada de reglas.
type ReorderRuleListResponse struct {
	Items []ReorderRuleResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

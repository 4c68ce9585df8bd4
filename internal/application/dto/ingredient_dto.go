package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest entrada para crear un ingrediente.
type CreateIngredientRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Category        string          `json:"category"`
	Unit            string          `json:"unit" validate:"required"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
	MinimumStock    decimal.Decimal `json:"minimum_stock"`
	MaximumStock    decimal.Decimal `json:"maximum_stock"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit"`
	Supplier        string          `json:"supplier"`
	SupplierContact string          `json:"supplier_contact"`
	IsPerishable    bool            `json:"is_perishable"`
	ExpiryDate      *time.Time      `json:"expiry_date"`
	StorageLocation string          `json:"storage_location"`
	DailyUsage      decimal.Decimal `json:"daily_usage"`
	LeadTimeDays    int             `json:"lead_time_days" validate:"min=0"`
}

// UpdateIngredientRequest entrada para actualizar (campos opcionales; el stock
// no se edita aquí, solo vía ajustes).
type UpdateIngredientRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category        *string          `json:"category"`
	Unit            *string          `json:"unit"`
	MinimumStock    *decimal.Decimal `json:"minimum_stock"`
	MaximumStock    *decimal.Decimal `json:"maximum_stock"`
	CostPerUnit     *decimal.Decimal `json:"cost_per_unit"`
	Supplier        *string          `json:"supplier"`
	SupplierContact *string          `json:"supplier_contact"`
	IsPerishable    *bool            `json:"is_perishable"`
	ExpiryDate      *time.Time       `json:"expiry_date"`
	StorageLocation *string          `json:"storage_location"`
	DailyUsage      *decimal.Decimal `json:"daily_usage"`
	LeadTimeDays    *int             `json:"lead_time_days" validate:"omitempty,min=0"`
}

// AdjustStockRequest ajuste manual de stock: delta con signo y motivo.
type AdjustStockRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	Type     string          `json:"type" validate:"omitempty,oneof=ADJUSTMENT WASTE"`
	Reason   string          `json:"reason"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Unit            string          `json:"unit"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
	MinimumStock    decimal.Decimal `json:"minimum_stock"`
	MaximumStock    decimal.Decimal `json:"maximum_stock"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit"`
	Supplier        string          `json:"supplier"`
	SupplierContact string          `json:"supplier_contact"`
	IsPerishable    bool            `json:"is_perishable"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	StorageLocation string          `json:"storage_location"`
	DailyUsage      decimal.Decimal `json:"daily_usage"`
	LeadTimeDays    int             `json:"lead_time_days"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IngredientListResponse lista paginada de ingredientes.
type IngredientListResponse struct {
	Items []IngredientResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// StockMovementResponse un movimiento del historial de stock.
type StockMovementResponse struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredient_id"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       string          `json:"reason,omitempty"`
	ReferenceID  string          `json:"reference_id,omitempty"`
	CreatedBy    string          `json:"created_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa una materia prima en inventario.
// CurrentStock, MinimumStock, MaximumStock y DailyUsage se asumen no negativos;
// MinimumStock <= MaximumStock no lo impone el motor de alertas (supuesto documentado).
// ExpiryDate solo aplica si IsPerishable es true.
type Ingredient struct {
	ID              string
	Name            string
	Category        string // verduras, carnes, lácteos, secos, etc.
	Unit            string // kg, l, unidad
	CurrentStock    decimal.Decimal
	MinimumStock    decimal.Decimal
	MaximumStock    decimal.Decimal
	CostPerUnit     decimal.Decimal
	Supplier        string
	SupplierContact string
	IsPerishable    bool
	ExpiryDate      *time.Time
	StorageLocation string
	DailyUsage      decimal.Decimal // consumo promedio diario
	LeadTimeDays    int             // días que tarda un pedido en llegar
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StockMovement registra cada variación de stock de un ingrediente
// (ajuste manual, consumo por orden, merma). Quantity es el delta con signo.
type StockMovement struct {
	ID           string
	IngredientID string
	Type         string // ADJUSTMENT, ORDER, WASTE
	Quantity     decimal.Decimal
	Reason       string
	ReferenceID  string // orden asociada, si aplica
	CreatedBy    string
	CreatedAt    time.Time
}

const (
	MovementTypeADJUSTMENT = "ADJUSTMENT"
	MovementTypeORDER      = "ORDER"
	MovementTypeWASTE      = "WASTE"
)

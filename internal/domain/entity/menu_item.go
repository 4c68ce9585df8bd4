package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un plato o bebida de la carta.
// Available se deriva del stock de sus ingredientes (receta), no se edita a mano.
type MenuItem struct {
	ID          string
	Name        string
	Category    string // entradas, fuertes, postres, bebidas
	Description string
	Price       decimal.Decimal
	Available   bool
	PrepMinutes int
	Station     string // estación de cocina que lo prepara: grill, fríos, barra
	Recipe      []RecipeLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeLine cantidad de un ingrediente por porción del plato.
type RecipeLine struct {
	IngredientID string
	Quantity     decimal.Decimal
}

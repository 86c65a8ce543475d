package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockQuant es un registro del libro de existencias: cantidad física de un
// producto en una ubicación concreta, con la porción ya reservada por otras
// operaciones.
type StockQuant struct {
	ID               string
	ProductID        string
	LocationID       string
	Quantity         decimal.Decimal
	ReservedQuantity decimal.Decimal
	UpdatedAt        time.Time
}

// Available cantidad disponible: física menos reservada. Puede ser negativa si
// el libro ya quedó en negativo; lo que se compara es la suma del subárbol.
func (q *StockQuant) Available() decimal.Decimal {
	return q.Quantity.Sub(q.ReservedQuantity)
}

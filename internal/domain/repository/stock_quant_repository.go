package repository

import "github.com/shopspring/decimal"

// StockQuantRepository puerto de lectura del libro de existencias (DIP).
// El libro lo escribe el sistema de inventario; aquí solo se consulta.
type StockQuantRepository interface {
	// SumAvailable suma (quantity - reserved_quantity) de todos los registros
	// del producto en las ubicaciones dadas. Sin registros, cero.
	SumAvailable(productID string, locationIDs []string) (decimal.Decimal, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

var _ repository.StockQuantRepository = (*StockQuantRepo)(nil)

// StockQuantRepo lectura del libro de existencias sobre PostgreSQL (usable con
// pool o tx). El libro lo escribe el motor de inventario; aquí nunca se muta.
type StockQuantRepo struct {
	q Querier
}

// NewStockQuantRepository construye el adaptador de quants. Pasar pool o tx (Querier).
func NewStockQuantRepository(q Querier) *StockQuantRepo {
	return &StockQuantRepo{q: q}
}

// SumAvailable suma (quantity - reserved_quantity) del producto en las
// ubicaciones dadas. Sin registros devuelve cero.
func (r *StockQuantRepo) SumAvailable(productID string, locationIDs []string) (decimal.Decimal, error) {
	if len(locationIDs) == 0 {
		return decimal.Zero, nil
	}
	query := `
		SELECT COALESCE(SUM(quantity - reserved_quantity), 0)
		FROM stock_quants
		WHERE product_id = $1 AND location_id = ANY($2)`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, productID, locationIDs).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum available: %w", err)
	}
	return total, nil
}

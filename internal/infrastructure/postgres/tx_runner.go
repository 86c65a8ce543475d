package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/StockGuard-api/internal/application/stockcheck"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

var _ stockcheck.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. La
// confirmación de venta lee el libro de existencias y cambia el estado de la
// orden bajo el mismo aislamiento.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCheck inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un InsufficientStockError dentro de fn revierte todo: la
// orden queda sin confirmar.
func (r *TxRunner) RunCheck(ctx context.Context, fn func(
	orders repository.SaleOrderRepository,
	products repository.ProductRepository,
	uoms repository.UoMRepository,
	warehouses repository.WarehouseRepository,
	locations repository.StockLocationRepository,
	quants repository.StockQuantRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewSaleOrderRepository(tx),
		NewProductRepository(tx),
		NewUoMRepository(tx),
		NewWarehouseRepository(tx),
		NewStockLocationRepository(tx),
		NewStockQuantRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

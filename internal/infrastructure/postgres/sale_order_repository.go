package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

var _ repository.SaleOrderRepository = (*SaleOrderRepo)(nil)

// SaleOrderRepo lectura de órdenes de venta y cambio de estado sobre
// PostgreSQL (usable con pool o tx; la confirmación lo usa dentro de la tx).
type SaleOrderRepo struct {
	q Querier
}

// NewSaleOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewSaleOrderRepository(q Querier) *SaleOrderRepo {
	return &SaleOrderRepo{q: q}
}

// GetByID obtiene una orden por ID. nil si no existe.
func (r *SaleOrderRepo) GetByID(id string) (*entity.SaleOrder, error) {
	query := `
		SELECT id, company_id, COALESCE(warehouse_id, ''), state, created_at, updated_at
		FROM sale_orders WHERE id = $1`
	var o entity.SaleOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.WarehouseID, &o.State, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale order: %w", err)
	}
	return &o, nil
}

// LinesByOrder devuelve las líneas de la orden en orden de declaración.
func (r *SaleOrderRepo) LinesByOrder(orderID string) ([]*entity.SaleOrderLine, error) {
	query := `
		SELECT id, order_id, product_id, quantity, COALESCE(uom_id, ''), sequence
		FROM sale_order_lines WHERE order_id = $1 ORDER BY sequence ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.SaleOrderLine
	for rows.Next() {
		var l entity.SaleOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UoMID, &l.Sequence); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// UpdateState cambia el estado de la orden.
func (r *SaleOrderRepo) UpdateState(orderID, state string) error {
	query := `UPDATE sale_orders SET state = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, orderID, state)
	if err != nil {
		return fmt.Errorf("update order state: %w", err)
	}
	return nil
}

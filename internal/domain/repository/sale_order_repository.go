package repository

import "github.com/jhoicas/StockGuard-api/internal/domain/entity"

// SaleOrderRepository puerto de lectura de órdenes de venta y cambio de estado
// tras la validación (DIP). El resto del ciclo de vida pertenece al sistema de
// órdenes.
type SaleOrderRepository interface {
	GetByID(id string) (*entity.SaleOrder, error)
	// LinesByOrder devuelve las líneas en orden de declaración (sequence).
	LinesByOrder(orderID string) ([]*entity.SaleOrderLine, error)
	UpdateState(orderID, state string) error
}

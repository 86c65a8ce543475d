package stockcheck

import (
	"context"

	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La confirmación de venta valida y cambia de
// estado en la misma transacción: las lecturas del libro de existencias quedan
// bajo el mismo aislamiento que el cambio de estado.
type TxRunner interface {
	RunCheck(ctx context.Context, fn func(
		orders repository.SaleOrderRepository,
		products repository.ProductRepository,
		uoms repository.UoMRepository,
		warehouses repository.WarehouseRepository,
		locations repository.StockLocationRepository,
		quants repository.StockQuantRepository,
	) error) error
}

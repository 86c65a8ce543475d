package stockcheck

import (
	"context"
	"fmt"

	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

// ConfirmSaleOrderUseCase confirma una orden de venta. Es el adaptador del
// gancho de ciclo de vida: lee el interruptor prevent_sales y, si está activo,
// valida disponibilidad antes de pasar la orden a confirmed. Validación y
// cambio de estado corren en la misma transacción (TxRunner).
type ConfirmSaleOrderUseCase struct {
	settings repository.SettingsRepository
	txRunner TxRunner
	// pickingTypes solo participa en la ruta POS; la confirmación de venta
	// resuelve por bodega, pero el resolutor lo exige como dependencia.
	pickingTypes repository.PickingTypeRepository
}

// NewConfirmSaleOrderUseCase construye el caso de uso.
func NewConfirmSaleOrderUseCase(
	settings repository.SettingsRepository,
	txRunner TxRunner,
	pickingTypes repository.PickingTypeRepository,
) *ConfirmSaleOrderUseCase {
	return &ConfirmSaleOrderUseCase{settings: settings, txRunner: txRunner, pickingTypes: pickingTypes}
}

// Confirm carga la orden, aplica la validación si prevent_sales está activo y
// cambia el estado a confirmed. InsufficientStockError y ConfigurationError
// abortan la transacción completa: la orden queda confirmada entera o no queda
// confirmada (sin confirmación parcial de líneas).
func (uc *ConfirmSaleOrderUseCase) Confirm(ctx context.Context, companyID, orderID string) error {
	cfg, err := uc.settings.GetByCompany(companyID)
	if err != nil {
		return fmt.Errorf("configuración de %s: %w", companyID, err)
	}

	return uc.txRunner.RunCheck(ctx, func(
		orders repository.SaleOrderRepository,
		products repository.ProductRepository,
		uoms repository.UoMRepository,
		warehouses repository.WarehouseRepository,
		locations repository.StockLocationRepository,
		quants repository.StockQuantRepository,
	) error {
		order, err := orders.GetByID(orderID)
		if err != nil {
			return fmt.Errorf("orden %s: %w", orderID, err)
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.CompanyID != companyID {
			return domain.ErrForbidden
		}
		if order.State == entity.OrderStateConfirmed {
			// Confirmar dos veces es un no-op.
			return nil
		}
		if order.State == entity.OrderStateCancelled {
			return domain.ErrInvalidInput
		}

		if cfg.PreventSales {
			lines, err := orders.LinesByOrder(orderID)
			if err != nil {
				return fmt.Errorf("líneas de %s: %w", orderID, err)
			}
			validator := NewOrderValidator(
				products,
				NewLocationResolver(warehouses, locations, uc.pickingTypes),
				NewLineValidator(uoms, NewAvailabilityCalculator(locations, quants)),
			)
			if err := validator.ValidateOrder(NewSalesOrder(order, lines)); err != nil {
				return err
			}
		}

		return orders.UpdateState(orderID, entity.OrderStateConfirmed)
	})
}

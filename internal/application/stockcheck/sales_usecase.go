package stockcheck

import (
	"fmt"

	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

// SalesCheckUseCase verificaciones de venta que no cambian estado: el chequeo
// manual ("verificar stock ahora") y el aviso consultivo al editar cantidades.
type SalesCheckUseCase struct {
	orders    repository.SaleOrderRepository
	validator *OrderValidator
}

// NewSalesCheckUseCase construye el caso de uso.
func NewSalesCheckUseCase(orders repository.SaleOrderRepository, validator *OrderValidator) *SalesCheckUseCase {
	return &SalesCheckUseCase{orders: orders, validator: validator}
}

// ManualCheck corre la validación completa de la orden sin importar los
// interruptores y sin tocar el estado. El handler traduce el resultado a una
// notificación de éxito o advertencia.
func (uc *SalesCheckUseCase) ManualCheck(companyID, orderID string) error {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return fmt.Errorf("orden %s: %w", orderID, err)
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return domain.ErrForbidden
	}
	lines, err := uc.orders.LinesByOrder(orderID)
	if err != nil {
		return fmt.Errorf("líneas de %s: %w", orderID, err)
	}
	return uc.validator.ValidateOrder(NewSalesOrder(order, lines))
}

// AdvisoryInput línea en edición: la orden puede no existir todavía, por eso
// llega la bodega como hint opcional en lugar de un ID de orden.
type AdvisoryInput struct {
	WarehouseID string
	Line        LineInput
}

// AdviseLine chequeo informativo previo al guardado: devuelve un aviso cuando
// la cantidad editada superaría el disponible, nil cuando alcanza. Nunca
// bloquea la edición.
func (uc *SalesCheckUseCase) AdviseLine(companyID string, in AdvisoryInput) (*LineWarning, error) {
	ord := NewAdHocOrder(companyID, in.WarehouseID, in.Line)
	return uc.validator.AdviseLine(ord, in.Line)
}

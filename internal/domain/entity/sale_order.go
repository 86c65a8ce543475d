package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta (el ciclo de vida pertenece al sistema de
// órdenes; aquí solo se lee y se confirma tras pasar la validación).
const (
	OrderStateDraft     = "draft"
	OrderStateConfirmed = "confirmed"
	OrderStateCancelled = "cancelled"
)

// SaleOrder vista de solo lectura de una orden de venta. WarehouseID es la
// bodega explícita de la orden; vacío = se resuelve por empresa.
type SaleOrder struct {
	ID          string
	CompanyID   string
	WarehouseID string
	State       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaleOrderLine línea de una orden de venta: producto, cantidad solicitada y
// la unidad en que fue capturada (puede diferir de la unidad de almacenamiento).
type SaleOrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	UoMID     string
	Sequence  int
}

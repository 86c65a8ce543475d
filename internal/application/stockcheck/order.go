// Package stockcheck implementa la verificación de disponibilidad de stock que
// bloquea la confirmación de órdenes de venta y de punto de venta cuando alguna
// línea pide más de lo disponible en la ubicación resuelta.
package stockcheck

import (
	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LineInput línea tipada de una orden: producto, cantidad solicitada y unidad
// de captura. UoMID vacío significa que la cantidad ya viene en la unidad de
// almacenamiento del producto (caso punto de venta). Los payloads sueltos del
// exterior se parsean a este tipo en el borde HTTP antes de llegar al núcleo.
type LineInput struct {
	ProductID string
	Quantity  decimal.Decimal
	UoMID     string
}

// Validate rechaza líneas malformadas antes de que entren al validador.
func (l LineInput) Validate() error {
	if l.ProductID == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// CheckableOrder abstrae las dos clases de orden (venta y punto de venta) para
// que el validador se escriba una sola vez. Los hints dicen cómo resolver la
// bodega: PickingTypeHint no vacío fuerza la ruta POS; WarehouseHint es la
// bodega explícita de la orden de venta; sin hints se resuelve por empresa.
type CheckableOrder interface {
	CompanyID() string
	WarehouseHint() string
	PickingTypeHint() string
	Lines() []LineInput
}

// SalesOrder adapta una orden de venta con sus líneas al validador.
type SalesOrder struct {
	order *entity.SaleOrder
	lines []LineInput
}

// NewSalesOrder construye el adaptador desde la orden y sus líneas persistidas.
func NewSalesOrder(order *entity.SaleOrder, lines []*entity.SaleOrderLine) SalesOrder {
	in := make([]LineInput, 0, len(lines))
	for _, l := range lines {
		in = append(in, LineInput{ProductID: l.ProductID, Quantity: l.Quantity, UoMID: l.UoMID})
	}
	return SalesOrder{order: order, lines: in}
}

func (o SalesOrder) CompanyID() string       { return o.order.CompanyID }
func (o SalesOrder) WarehouseHint() string   { return o.order.WarehouseID }
func (o SalesOrder) PickingTypeHint() string { return "" }
func (o SalesOrder) Lines() []LineInput      { return o.lines }

// PosOrder adapta una orden de punto de venta: la bodega se resuelve por el
// tipo de operación de la sesión.
type PosOrder struct {
	companyID     string
	pickingTypeID string
	lines         []LineInput
}

// NewPosOrder construye el adaptador desde la sesión y las líneas tipadas.
func NewPosOrder(session *entity.PosSession, lines []LineInput) PosOrder {
	return PosOrder{companyID: session.CompanyID, pickingTypeID: session.PickingTypeID, lines: lines}
}

func (o PosOrder) CompanyID() string       { return o.companyID }
func (o PosOrder) WarehouseHint() string   { return "" }
func (o PosOrder) PickingTypeHint() string { return o.pickingTypeID }
func (o PosOrder) Lines() []LineInput      { return o.lines }

// AdHocOrder orden sintética de una sola línea para las verificaciones
// consultivas (aviso al editar cantidad) que no tienen orden persistida.
type AdHocOrder struct {
	companyID     string
	warehouseHint string
	line          LineInput
}

// NewAdHocOrder construye la orden sintética. warehouseHint puede ser vacío.
func NewAdHocOrder(companyID, warehouseHint string, line LineInput) AdHocOrder {
	return AdHocOrder{companyID: companyID, warehouseHint: warehouseHint, line: line}
}

func (o AdHocOrder) CompanyID() string       { return o.companyID }
func (o AdHocOrder) WarehouseHint() string   { return o.warehouseHint }
func (o AdHocOrder) PickingTypeHint() string { return "" }
func (o AdHocOrder) Lines() []LineInput      { return []LineInput{o.line} }

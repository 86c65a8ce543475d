package dto

import "github.com/shopspring/decimal"

// PosLineRequest línea de punto de venta tal como llega del cliente POS.
// uom_id vacío = la cantidad viene en la unidad de almacenamiento del producto.
type PosLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UoMID     string          `json:"uom_id,omitempty"`
}

// PosOrderRequest body para POST /api/pos/orders/validate.
type PosOrderRequest struct {
	SessionID string           `json:"session_id"`
	Draft     bool             `json:"draft"`
	Lines     []PosLineRequest `json:"lines"`
}

// PosLineCheckRequest body para POST /api/pos/lines/validate (alta o cambio de
// cantidad de una línea).
type PosLineCheckRequest struct {
	SessionID string          `json:"session_id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UoMID     string          `json:"uom_id,omitempty"`
}

// AdvisoryRequest body para POST /api/sales/lines/advise (chequeo informativo
// al editar la cantidad de una línea de venta).
type AdvisoryRequest struct {
	WarehouseID string          `json:"warehouse_id,omitempty"`
	ProductID   string          `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UoMID       string          `json:"uom_id,omitempty"`
}

// AdvisoryResponse ok:true cuando alcanza; warning presente cuando no.
type AdvisoryResponse struct {
	OK      bool             `json:"ok"`
	Warning *WarningResponse `json:"warning,omitempty"`
}

// WarningResponse aviso no bloqueante (título + mensaje).
type WarningResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

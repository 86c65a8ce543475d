package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto. Solo stockable y consumable participan en la verificación
// de disponibilidad; service queda siempre exento.
const (
	ProductKindStockable  = "stockable"
	ProductKindConsumable = "consumable"
	ProductKindService    = "service"
)

// Product representa un producto o SKU. UoMID es su unidad de almacenamiento:
// toda comparación de disponibilidad se hace en esa unidad.
type Product struct {
	ID        string
	CompanyID string
	SKU       string // código único por empresa
	Name      string
	Kind      string // ver constantes ProductKind*
	UoMID     string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsStockTracked indica si el producto está sujeto a verificación de stock.
func (p *Product) IsStockTracked() bool {
	return p.Kind == ProductKindStockable || p.Kind == ProductKindConsumable
}

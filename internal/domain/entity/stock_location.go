package entity

import "time"

// Usos de ubicación. Solo las ubicaciones internas almacenan stock propio.
const (
	LocationUsageInternal  = "internal"
	LocationUsageView      = "view"
	LocationUsageCustomer  = "customer"
	LocationUsageSupplier  = "supplier"
	LocationUsageInventory = "inventory" // ajustes/pérdidas
)

// StockLocation es un nodo del árbol de ubicaciones de almacenamiento.
// ParentID vacío = raíz. La disponibilidad de un producto en una ubicación
// agrega siempre el subárbol completo, porque el inventario real suele vivir
// en sububicaciones bajo la ubicación principal de la bodega.
type StockLocation struct {
	ID        string
	CompanyID string
	ParentID  string // "" si es raíz
	Name      string
	Usage     string // ver constantes LocationUsage*
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsInternal indica si la ubicación puede contener stock propio.
func (l *StockLocation) IsInternal() bool {
	return l.Usage == LocationUsageInternal
}

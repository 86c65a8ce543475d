package entity

import "time"

// PickingType tipo de operación de inventario. En punto de venta determina qué
// bodega gobierna los movimientos de la sesión. WarehouseID vacío es un error
// de configuración cuando el tipo se usa para validar stock.
type PickingType struct {
	ID          string
	CompanyID   string
	Name        string
	WarehouseID string // "" = sin bodega asociada (configuración incompleta)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

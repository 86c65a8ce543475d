package entity

import "time"

// PosSession sesión de punto de venta. Su tipo de operación (PickingTypeID)
// resuelve la bodega contra la que se verifica disponibilidad.
type PosSession struct {
	ID            string
	CompanyID     string
	Name          string
	PickingTypeID string
	State         string // opened, closed
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

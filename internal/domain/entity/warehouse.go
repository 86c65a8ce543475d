package entity

import "time"

// Warehouse representa una bodega física. Cada bodega tiene exactamente una
// ubicación interna principal (LotStockLocationID) que es la raíz del subárbol
// contra el que se verifica disponibilidad.
type Warehouse struct {
	ID                 string
	CompanyID          string
	Name               string
	Code               string
	LotStockLocationID string // ubicación principal de stock; vacío = bodega mal configurada
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

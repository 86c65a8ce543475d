package repository

import "github.com/jhoicas/StockGuard-api/internal/domain/entity"

// WarehouseRepository puerto de lectura de bodegas (DIP).
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	// FirstByCompany devuelve la bodega más antigua de la empresa (ORDER BY
	// created_at): desempate determinista cuando la orden no trae bodega
	// explícita. nil si la empresa no tiene bodegas.
	FirstByCompany(companyID string) (*entity.Warehouse, error)
}

package repository

import "github.com/jhoicas/StockGuard-api/internal/domain/entity"

// PickingTypeRepository puerto de lectura de tipos de operación (DIP).
type PickingTypeRepository interface {
	GetByID(id string) (*entity.PickingType, error)
}

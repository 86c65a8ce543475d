package repository

import "github.com/jhoicas/StockGuard-api/internal/domain/entity"

// UoMRepository puerto de lectura de unidades de medida (DIP).
type UoMRepository interface {
	GetByID(id string) (*entity.UoM, error)
}

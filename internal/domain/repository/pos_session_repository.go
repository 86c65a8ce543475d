package repository

import "github.com/jhoicas/StockGuard-api/internal/domain/entity"

// PosSessionRepository puerto de lectura de sesiones de punto de venta (DIP).
type PosSessionRepository interface {
	GetByID(id string) (*entity.PosSession, error)
}

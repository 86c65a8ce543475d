package repository

import "github.com/jhoicas/StockGuard-api/internal/domain/entity"

// StockLocationRepository puerto de lectura del árbol de ubicaciones (DIP).
type StockLocationRepository interface {
	GetByID(id string) (*entity.StockLocation, error)
	// SubtreeIDs devuelve la ubicación raíz y todos sus descendientes.
	SubtreeIDs(rootID string) ([]string, error)
}

package repository

import "github.com/jhoicas/StockGuard-api/internal/domain/entity"

// ProductRepository puerto de lectura de productos (DIP).
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
}

package repository

import "github.com/jhoicas/StockGuard-api/internal/domain/entity"

// CompanyRepository puerto de lectura de empresas (DIP).
type CompanyRepository interface {
	GetByID(id string) (*entity.Company, error)
}

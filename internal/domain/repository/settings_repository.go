package repository

import "github.com/jhoicas/StockGuard-api/internal/domain/entity"

// SettingsRepository puerto de persistencia de los interruptores de prevención (DIP).
type SettingsRepository interface {
	// GetByCompany devuelve los interruptores de la empresa; sin fila devuelve
	// ambos apagados (validación deshabilitada), nunca nil.
	GetByCompany(companyID string) (*entity.PreventionSettings, error)
	Upsert(settings *entity.PreventionSettings) error
}

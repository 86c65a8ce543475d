package usecase

import (
	"time"

	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de los interruptores de prevención
// de stock negativo por empresa.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get devuelve los interruptores de la empresa (apagados si nunca se guardaron).
func (uc *SettingsUseCase) Get(companyID string) (*entity.PreventionSettings, error) {
	return uc.settings.GetByCompany(companyID)
}

// Update guarda los dos interruptores. Son independientes: ventas puede estar
// activo con punto de venta apagado y viceversa.
func (uc *SettingsUseCase) Update(companyID string, preventSales, preventPos bool) (*entity.PreventionSettings, error) {
	s := &entity.PreventionSettings{
		CompanyID:    companyID,
		PreventSales: preventSales,
		PreventPos:   preventPos,
		UpdatedAt:    time.Now(),
	}
	if err := uc.settings.Upsert(s); err != nil {
		return nil, err
	}
	return s, nil
}

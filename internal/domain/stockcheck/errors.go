package stockcheck

import (
	"fmt"

	"github.com/jhoicas/StockGuard-api/internal/domain"
)

// InsufficientStockError una o más líneas piden más de lo disponible. Es flujo
// de negocio esperado (el usuario corrige cantidades), no una falla del sistema;
// aborta la acción que lo disparó con el mensaje agregado completo.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientStockError) Error() string {
	return FormatShortfalls(e.Shortfalls)
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error {
	return domain.ErrInsufficientStock
}

// ConfigurationError la resolución de bodega/ubicación no encontró un destino
// válido (tipo de operación sin bodega, bodega sin ubicación principal, empresa
// sin bodegas). Siempre aborta: quien despliega debe corregir la configuración,
// no se salta la validación en silencio.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuración de stock incompleta: %s", e.Reason)
}

// Unwrap permite errors.Is(err, domain.ErrStockConfig).
func (e *ConfigurationError) Unwrap() error {
	return domain.ErrStockConfig
}

package stockcheck

import (
	"fmt"

	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// AvailabilityCalculator calcula la cantidad disponible de un producto en una
// ubicación agregando el subárbol completo de sububicaciones: el inventario
// real suele vivir en estantes bajo la ubicación principal de la bodega, no
// directamente en ella.
type AvailabilityCalculator struct {
	locations repository.StockLocationRepository
	quants    repository.StockQuantRepository
}

// NewAvailabilityCalculator construye el calculador.
func NewAvailabilityCalculator(
	locations repository.StockLocationRepository,
	quants repository.StockQuantRepository,
) *AvailabilityCalculator {
	return &AvailabilityCalculator{locations: locations, quants: quants}
}

// Available suma (física - reservada) de todos los registros del producto en la
// ubicación y sus descendientes, en la unidad de almacenamiento del producto.
// Sin registros el resultado es cero, no un error. Lectura pura.
func (c *AvailabilityCalculator) Available(productID string, loc *entity.StockLocation) (decimal.Decimal, error) {
	ids, err := c.locations.SubtreeIDs(loc.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("subárbol de %s: %w", loc.ID, err)
	}
	total, err := c.quants.SumAvailable(productID, ids)
	if err != nil {
		return decimal.Zero, fmt.Errorf("disponible de %s: %w", productID, err)
	}
	return total, nil
}

// Package uom implementa la conversión entre unidades de medida (servicio de
// dominio puro, mismo estilo que el cálculo de costo promedio).
package uom

import (
	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Convert pasa una cantidad de la unidad from a la unidad to vía la unidad de
// referencia de la categoría: qtyRef = qty * from.Factor; resultado = qtyRef / to.Factor.
// Unidades de categorías distintas no son convertibles (ErrIncompatibleUoM).
func Convert(qty decimal.Decimal, from, to *entity.UoM) (decimal.Decimal, error) {
	if from == nil || to == nil {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if from.ID == to.ID {
		return qty, nil
	}
	if from.CategoryID != to.CategoryID {
		return decimal.Zero, domain.ErrIncompatibleUoM
	}
	if to.Factor.IsZero() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return qty.Mul(from.Factor).Div(to.Factor), nil
}

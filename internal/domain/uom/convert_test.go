package uom_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/uom"
)

var (
	unidad = &entity.UoM{ID: "uom-unidad", Name: "Unidad", CategoryID: "cat-unidad", Factor: decimal.NewFromInt(1)}
	docena = &entity.UoM{ID: "uom-docena", Name: "Docena", CategoryID: "cat-unidad", Factor: decimal.NewFromInt(12)}
	kilo   = &entity.UoM{ID: "uom-kg", Name: "kg", CategoryID: "cat-peso", Factor: decimal.NewFromInt(1)}
)

// Dos docenas expresadas en unidades deben ser 24.
func TestConvert_DocenaAUnidad(t *testing.T) {
	got, err := uom.Convert(decimal.NewFromInt(2), docena, unidad)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(24)), "2 docenas = 24 unidades, se obtuvo %s", got)
}

// 30 unidades expresadas en docenas deben ser 2.5.
func TestConvert_UnidadADocena(t *testing.T) {
	got, err := uom.Convert(decimal.NewFromInt(30), unidad, docena)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("2.5")), "30 unidades = 2.5 docenas, se obtuvo %s", got)
}

// Misma unidad: la cantidad no cambia.
func TestConvert_MismaUnidad(t *testing.T) {
	got, err := uom.Convert(decimal.RequireFromString("10.5"), unidad, unidad)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("10.5")))
}

// Categorías distintas no son convertibles.
func TestConvert_CategoriasIncompatibles(t *testing.T) {
	_, err := uom.Convert(decimal.NewFromInt(1), docena, kilo)
	assert.ErrorIs(t, err, domain.ErrIncompatibleUoM)
}

func TestConvert_UnidadNil(t *testing.T) {
	_, err := uom.Convert(decimal.NewFromInt(1), nil, unidad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

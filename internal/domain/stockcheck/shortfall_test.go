package stockcheck_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/stockcheck"
)

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// El mensaje agregado debe nombrar cada producto faltante con solicitado,
// disponible, unidad y bodega, más la instrucción final.
func TestFormatShortfalls_MensajeCompleto(t *testing.T) {
	msg := stockcheck.FormatShortfalls([]stockcheck.Shortfall{
		{ProductName: "Café 500g", Requested: qty("10.5"), Available: qty("10"), UoMName: "Unidad", WarehouseName: "Bodega Principal"},
		{ProductName: "Azúcar 1kg", Requested: qty("7"), Available: qty("2"), UoMName: "Unidad", WarehouseName: "Bodega Principal"},
	})

	assert.Contains(t, msg, "Café 500g")
	assert.Contains(t, msg, "Azúcar 1kg")
	assert.Contains(t, msg, "Solicitado 10.50 Unidad")
	assert.Contains(t, msg, "Disponible 10.00 Unidad")
	assert.Contains(t, msg, "(Bodega Bodega Principal)")
	assert.Contains(t, msg, "Ajuste las cantidades o reponga el stock.")
}

// Sin bodega conocida la línea omite el sufijo de bodega.
func TestShortfallLine_SinBodega(t *testing.T) {
	line := stockcheck.Shortfall{
		ProductName: "Café 500g", Requested: qty("3"), Available: qty("1"), UoMName: "Unidad",
	}.Line()
	assert.NotContains(t, line, "Bodega")
}

// Los errores tipados deben destaparse a sus sentinelas de dominio.
func TestErroresTipados_ErrorsIs(t *testing.T) {
	var err error = &stockcheck.InsufficientStockError{Shortfalls: []stockcheck.Shortfall{
		{ProductName: "Café 500g", Requested: qty("5"), Available: qty("0"), UoMName: "Unidad"},
	}}
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.NotErrorIs(t, err, domain.ErrStockConfig)

	err = &stockcheck.ConfigurationError{Reason: "el tipo de operación no tiene bodega"}
	assert.True(t, errors.Is(err, domain.ErrStockConfig))
	assert.Contains(t, err.Error(), "el tipo de operación no tiene bodega")
}

// Package stockcheck define los tipos de resultado de la verificación de
// disponibilidad: el registro de faltante por producto y los errores tipados
// que la validación devuelve al ciclo de vida de la orden.
package stockcheck

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Shortfall faltante de un producto: cantidad solicitada contra disponible en
// la ubicación resuelta, ambas en la unidad de almacenamiento del producto.
// Vive solo durante una validación; nunca se persiste.
type Shortfall struct {
	ProductName   string
	Requested     decimal.Decimal
	Available     decimal.Decimal
	UoMName       string
	WarehouseName string // "" cuando no se conoce la bodega
}

// Line renderiza el faltante como una línea del mensaje agregado.
func (s Shortfall) Line() string {
	b := fmt.Sprintf("• %s: Solicitado %s %s, Disponible %s %s",
		s.ProductName,
		s.Requested.StringFixed(2), s.UoMName,
		s.Available.StringFixed(2), s.UoMName,
	)
	if s.WarehouseName != "" {
		b += fmt.Sprintf(" (Bodega %s)", s.WarehouseName)
	}
	return b
}

// FormatShortfalls construye el mensaje agregado para el usuario: una línea por
// producto faltante, en el orden en que se detectaron, con instrucción final.
func FormatShortfalls(shortfalls []Shortfall) string {
	var sb strings.Builder
	sb.WriteString("Stock insuficiente para los siguientes productos:\n\n")
	for _, s := range shortfalls {
		sb.WriteString(s.Line())
		sb.WriteString("\n")
	}
	sb.WriteString("\nAjuste las cantidades o reponga el stock.")
	return sb.String()
}

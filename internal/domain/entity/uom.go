package entity

import "github.com/shopspring/decimal"

// UoM unidad de medida. Factor expresa cuántas unidades de referencia de la
// categoría equivalen a 1 de esta unidad (ej. categoría "unidad": Unidad=1,
// Docena=12). Solo se convierte entre unidades de la misma categoría.
type UoM struct {
	ID         string
	CompanyID  string
	Name       string
	CategoryID string
	Factor     decimal.Decimal
}

package entity

import "time"

// PreventionSettings interruptores de prevención de stock negativo por empresa.
// Sin fila en la tabla, ambos apagados: la validación no corre.
type PreventionSettings struct {
	CompanyID    string
	PreventSales bool
	PreventPos   bool
	UpdatedAt    time.Time
}

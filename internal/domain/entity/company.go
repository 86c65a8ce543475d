package entity

import "time"

// Company representa una organización/tenant del sistema. Las órdenes y la
// configuración de prevención de stock pertenecen siempre a una sola empresa.
type Company struct {
	ID        string
	Name      string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

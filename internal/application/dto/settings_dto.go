package dto

import "time"

// UpdateSettingsRequest body para PUT /api/settings/stock-prevention.
type UpdateSettingsRequest struct {
	PreventSales bool `json:"prevent_sales"`
	PreventPos   bool `json:"prevent_pos"`
}

// SettingsResponse interruptores vigentes de la empresa.
type SettingsResponse struct {
	CompanyID    string    `json:"company_id"`
	PreventSales bool      `json:"prevent_sales"`
	PreventPos   bool      `json:"prevent_pos"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NotificationResponse notificación transitoria para el chequeo manual de
// stock: success cuando todo alcanza, warning (sticky) cuando hay faltantes.
type NotificationResponse struct {
	Type    string `json:"type"` // success | warning
	Title   string `json:"title"`
	Message string `json:"message"`
	Sticky  bool   `json:"sticky"`
}

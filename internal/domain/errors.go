package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrInsufficientStock base de stockcheck.InsufficientStockError (errors.Is).
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrStockConfig base de stockcheck.ConfigurationError: la resolución de
	// bodega/ubicación falló por configuración incompleta; nunca se omite en silencio.
	ErrStockConfig = errors.New("configuración de stock incompleta")
	// ErrIncompatibleUoM conversión entre unidades de categorías distintas.
	ErrIncompatibleUoM = errors.New("unidades de medida incompatibles")
)

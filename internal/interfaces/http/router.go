package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/StockGuard-api/internal/application/auth"
	"github.com/jhoicas/StockGuard-api/internal/application/stockcheck"
	"github.com/jhoicas/StockGuard-api/internal/application/usecase"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ConfirmUC  *stockcheck.ConfirmSaleOrderUseCase
	SalesUC    *stockcheck.SalesCheckUseCase
	PosUC      *stockcheck.PosCheckUseCase
	SettingsUC *usecase.SettingsUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	stockHandler := NewStockCheckHandler(deps.ConfirmUC, deps.SalesUC, deps.PosUC)

	// Ventas (protegido)
	sales := protected.Group("/sales")
	sales.Post("/orders/:id/confirm", stockHandler.ConfirmOrder)
	sales.Post("/orders/:id/check-stock", stockHandler.ManualCheck)
	sales.Post("/lines/advise", stockHandler.AdviseLine)

	// Punto de venta (protegido)
	pos := protected.Group("/pos")
	pos.Post("/orders/validate", stockHandler.ValidatePosOrder)
	pos.Post("/lines/validate", stockHandler.ValidatePosLine)

	// Configuración (protegido; escribir exige rol admin)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/stock-prevention", settingsHandler.Get)
	settings.Put("/stock-prevention", RequireRole(entity.RoleAdmin), settingsHandler.Update)
}

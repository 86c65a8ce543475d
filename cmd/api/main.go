package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/StockGuard-api/internal/application/auth"
	"github.com/jhoicas/StockGuard-api/internal/application/stockcheck"
	"github.com/jhoicas/StockGuard-api/internal/application/usecase"
	"github.com/jhoicas/StockGuard-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/StockGuard-api/internal/interfaces/http"
	"github.com/jhoicas/StockGuard-api/pkg/config"
	"github.com/jhoicas/StockGuard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewStockLocationRepository(pool)
	quantRepo := postgres.NewStockQuantRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	uomRepo := postgres.NewUoMRepository(pool)
	pickingTypeRepo := postgres.NewPickingTypeRepository(pool)
	sessionRepo := postgres.NewPosSessionRepository(pool)
	orderRepo := postgres.NewSaleOrderRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Validador sobre el pool: chequeo manual, aviso consultivo y POS.
	// La confirmación de venta arma el suyo dentro de la transacción.
	validator := stockcheck.NewOrderValidator(
		productRepo,
		stockcheck.NewLocationResolver(warehouseRepo, locationRepo, pickingTypeRepo),
		stockcheck.NewLineValidator(uomRepo, stockcheck.NewAvailabilityCalculator(locationRepo, quantRepo)),
	)

	confirmUC := stockcheck.NewConfirmSaleOrderUseCase(settingsRepo, txRunner, pickingTypeRepo)
	salesUC := stockcheck.NewSalesCheckUseCase(orderRepo, validator)
	posUC := stockcheck.NewPosCheckUseCase(settingsRepo, sessionRepo, validator)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockGuard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ConfirmUC:  confirmUC,
		SalesUC:    salesUC,
		PosUC:      posUC,
		SettingsUC: settingsUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

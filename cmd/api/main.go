package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/burger-house/internal/application/analytics"
	"github.com/jhoicas/burger-house/internal/application/auth"
	"github.com/jhoicas/burger-house/internal/application/ordering"
	"github.com/jhoicas/burger-house/internal/application/usecase"
	"github.com/jhoicas/burger-house/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/burger-house/internal/infrastructure/pdf"
	"github.com/jhoicas/burger-house/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/burger-house/internal/interfaces/http"
	"github.com/jhoicas/burger-house/internal/store"
	"github.com/jhoicas/burger-house/pkg/config"
	"github.com/jhoicas/burger-house/pkg/logger"
)

const devJWTSecret = "burger-house-dev-secret"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		if cfg.App.Env != "development" {
			log.Fatal().Msg("JWT_SECRET es obligatorio fuera de development")
		}
		log.Warn().Msg("JWT_SECRET vacío: se usa el secreto de desarrollo")
		cfg.JWT.Secret = devJWTSecret
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir espejo de persistencia")
	}
	defer backend.Close()

	recorder := metrics.NewRecorder()
	mirror := store.NewMirror(backend.Store, cfg.Storage.KeyPrefix, log, recorder)

	// Un snapshot corrupto detiene el arranque.
	settingsStore, err := store.NewSettingsStore(ctx, mirror)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar ajustes")
	}
	catalogStore, err := store.NewCatalogStore(ctx, mirror)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	cartStore, err := store.NewCartStore(ctx, mirror)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar carrito")
	}
	directoryStore, err := store.NewDirectoryStore(ctx, mirror,
		store.WithMinAutoRegisterPassword(cfg.Store.MinAutoRegisterPassword),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar directorio")
	}

	authUC := auth.NewAuthUseCase(directoryStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, recorder)
	catalogUC := usecase.NewCatalogUseCase(catalogStore)
	cartUC := usecase.NewCartUseCase(cartStore, catalogStore, cfg.Store.DeliveryFee)
	settingsUC := usecase.NewSettingsUseCase(settingsStore)
	staffUC := usecase.NewStaffUseCase(directoryStore)
	checkoutUC := ordering.NewCheckoutUseCase(directoryStore, cartStore, ordering.Config{
		DeliveryFee: cfg.Store.DeliveryFee,
		Delay:       cfg.Store.CheckoutDelay,
	}, recorder, log)
	orderUC := ordering.NewOrderUseCase(directoryStore, cfg.Store.CancelWindow, recorder, log)

	// PDF: comprobante del pedido
	receiptUC := ordering.NewReceiptUseCase(orderUC, settingsStore, infrapdf.NewMarotoReceiptGenerator(), cfg.Store.DeliveryFee)
	dashboardUC := appanalytics.NewDashboardUseCase(directoryStore, catalogStore)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Burger House API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		CartUC:      cartUC,
		SettingsUC:  settingsUC,
		StaffUC:     staffUC,
		CheckoutUC:  checkoutUC,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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

	// El WriteTimeout ya acota el checkout más largo.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

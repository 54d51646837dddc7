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

	"github.com/datco/erp-demo-api/internal/application/auth"
	appdataset "github.com/datco/erp-demo-api/internal/application/dataset"
	appreport "github.com/datco/erp-demo-api/internal/application/report"
	"github.com/datco/erp-demo-api/internal/fixture"
	"github.com/datco/erp-demo-api/internal/generator"
	"github.com/datco/erp-demo-api/internal/infrastructure/store"
	httpRouter "github.com/datco/erp-demo-api/internal/interfaces/http"
	"github.com/datco/erp-demo-api/pkg/config"
	"github.com/datco/erp-demo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Fixture JSON: si falta o está corrupto la API arranca igual con hojas
	// vacías (el generador cae al catálogo por defecto).
	fx, err := fixture.Load(cfg.Demo.FixturePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Demo.FixturePath).Msg("cargar fixture; se usan hojas vacías")
		fx = fixture.Empty()
	}

	customerStore := store.NewFileCustomerStore(cfg.Demo.StorePath)
	gen := generator.New(generator.SystemClock{})

	datasetUC := appdataset.NewUseCase(gen, fx, customerStore, log)
	reportUC := appreport.NewUseCase(datasetUC, generator.SystemClock{})
	authUC, err := auth.NewUseCase(fx.Permissions(), cfg.Demo.DemoPassword, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Datco ERP Demo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DatasetUC: datasetUC,
		ReportUC:  reportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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

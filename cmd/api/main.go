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

	"github.com/tu-usuario/todo-barras/internal/application/auth"
	"github.com/tu-usuario/todo-barras/internal/application/usecase"
	"github.com/tu-usuario/todo-barras/internal/infrastructure/memstate"
	"github.com/tu-usuario/todo-barras/internal/infrastructure/pdf"
	"github.com/tu-usuario/todo-barras/internal/infrastructure/postgres"
	"github.com/tu-usuario/todo-barras/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/todo-barras/internal/interfaces/http"
	"github.com/tu-usuario/todo-barras/pkg/config"
	"github.com/tu-usuario/todo-barras/pkg/logger"
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

	ctx := context.Background()

	// Gateway de persistencia: PostgreSQL si hay DATABASE_URL, si no el
	// archivo SQLite local (el equivalente del almacenamiento del navegador).
	var gw storage.Gateway
	if cfg.Storage.DatabaseURL != "" {
		gw, err = postgres.NewGateway(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		log.Info().Msg("gateway de persistencia: postgres")
	} else {
		gw, err = storage.NewSQLiteGateway(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir almacén SQLite")
		}
		log.Info().Str("archivo", cfg.Storage.SQLitePath).Msg("gateway de persistencia: sqlite")
	}
	defer gw.Close()

	// Estado en memoria, espejado al gateway tras cada mutación.
	store := memstate.New(gw, log)
	if err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar estado persistido")
	}

	pdfGenerator := pdf.NewMarotoSheetGenerator()
	venueUC := usecase.NewVenueUseCase(store.Venue())
	catalogUC := usecase.NewCatalogUseCase(store.Catalog())
	sheetUC := usecase.NewSheetUseCase(store.Sheets(), store.Catalog(), store.Venue(), pdfGenerator)
	authUC := auth.NewAuthUseCase(store.Venue(), auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TODO BARRAS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		VenueUC:   venueUC,
		CatalogUC: catalogUC,
		SheetUC:   sheetUC,
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

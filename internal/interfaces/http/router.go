package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/todo-barras/internal/application/auth"
	"github.com/tu-usuario/todo-barras/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	VenueUC   *usecase.VenueUseCase
	CatalogUC *usecase.CatalogUseCase
	SheetUC   *usecase.SheetUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Venue: lectura y onboarding públicos (la pantalla de login necesita el
	// título, y sin perfil todavía no hay clave con la que autenticarse)
	venueHandler := NewVenueHandler(deps.VenueUC)
	api.Get("/venue", venueHandler.Get)
	api.Post("/venue", venueHandler.Setup)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Venue opciones (protegido)
	protected.Put("/venue/name", venueHandler.Rename)
	protected.Put("/venue/password", venueHandler.ChangePassword)

	// Catálogo maestro (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog := protected.Group("/catalog")
	catalog.Get("/", catalogHandler.List)
	catalog.Post("/", catalogHandler.Add)
	catalog.Delete("/:index", catalogHandler.Remove)

	// Planillas (protegido)
	sheetHandler := NewSheetHandler(deps.SheetUC)
	sheets := protected.Group("/sheets")
	sheets.Post("/", sheetHandler.Create)
	sheets.Get("/", sheetHandler.List)
	sheets.Get("/:id", sheetHandler.Get)
	sheets.Delete("/:id", sheetHandler.Delete)
	sheets.Patch("/:id/rows/:index", sheetHandler.Adjust)
	sheets.Get("/:id/pdf", sheetHandler.ExportPDF)
}

package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the Fiber application with the middleware chain and routes.
func NewApp(handlers *Handlers, staticDir string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Cosmos Daily",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(RequestIDConfig()))
	app.Use(RequestIDToContextMiddleware())
	app.Use(RequestLoggerMiddleware())

	SetupRoutes(app, handlers, staticDir)
	return app
}

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers, staticDir string) {
	// Static assets
	app.Static("/static", staticDir)

	// Page mount: skeleton first, HTMX loads the resolved state
	app.Get("/", handlers.Home)

	// HTMX fragment for a mounted view
	app.Get("/view/:id", handlers.View)

	// JSON state of a mounted view
	app.Get("/api/view/:id", handlers.APIView)
}

package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/swaraj-shubh/notebook/internal/config"
	"github.com/swaraj-shubh/notebook/internal/controller"
	"github.com/swaraj-shubh/notebook/internal/pkg/logger"
	"github.com/swaraj-shubh/notebook/internal/pkg/serverutils"
)

type Server struct {
	app *fiber.App
	cfg *config.Config
}

func New(
	cfg *config.Config,
	log logger.ILogger,
	notebookController controller.INotebookController,
	noteController controller.INoteController,
) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(serverutils.RequestLoggerMiddleware(log))
	app.Use(serverutils.ErrorHandlerMiddleware(log))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Notebook API Backend!",
			"endpoints": fiber.Map{
				"notebooks": "/api/notebooks",
				"notes":     "/api/notebooks/{id}/notes",
			},
		})
	})

	// Routes
	api := app.Group("/api")
	notebookController.RegisterRoutes(api)
	noteController.RegisterRoutes(api)

	return &Server{
		app: app,
		cfg: cfg,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

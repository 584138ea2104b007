package routes

import (
	"tutorstate/backend/controllers"
	"tutorstate/backend/stores"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func SetupRoutes(app *fiber.App, progress *stores.ProgressStore, theme *stores.ThemeStore, logger zerolog.Logger) {
	api := app.Group("/api")

	// Progress routes
	progressController := controllers.NewProgressController(progress)
	api.Get("/modules", progressController.GetModules)
	api.Get("/progress", progressController.GetProgress)
	api.Get("/progress/overview", progressController.GetProgressOverview)
	api.Post("/progress/reset", progressController.ResetProgress)
	api.Post("/progress/:id/visit", progressController.MarkVisited)
	api.Post("/progress/:id/complete", progressController.MarkCompleted)

	// Theme routes
	themeController := controllers.NewThemeController(theme)
	api.Get("/theme", themeController.GetTheme)
	api.Put("/theme", themeController.SetTheme)
	api.Post("/theme/toggle", themeController.ToggleTheme)

	// Event stream
	eventsController := controllers.NewEventsController(progress, theme, logger)
	api.Get("/events", eventsController.Stream)
}

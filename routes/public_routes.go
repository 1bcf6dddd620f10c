package routes

import (
	"github.com/musicplanet/server/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/jwt", handlers.CreateToken)
	api.Post("/users", handlers.RegisterUser)

	api.Get("/classes", handlers.ListApprovedClasses)
	api.Get("/classes/popular", handlers.PopularClasses)
}

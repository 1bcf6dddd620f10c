package routes

import (
	"github.com/musicplanet/server/handlers"
	"github.com/musicplanet/server/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Patch("/:userId/make-admin", handlers.MakeAdmin)
	users.Patch("/:userId/make-instructor", handlers.MakeInstructor)

	classes := admin.Group("/classes")
	classes.Get("", handlers.AdminListClasses)
	classes.Patch("/:classId/approve", handlers.ApproveClass)
	classes.Patch("/:classId/deny", handlers.DenyClass)
	classes.Patch("/:classId/feedback", handlers.SendFeedback)

	admin.Get("/state", handlers.CheckState)
}

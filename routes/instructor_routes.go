package routes

import (
	"github.com/musicplanet/server/handlers"
	"github.com/musicplanet/server/middleware"
	"github.com/gofiber/fiber/v2"
)

func InstructorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	instructor := api.Group("/instructor", middleware.Protected(), middleware.InstructorRequired())

	classes := instructor.Group("/classes")
	classes.Post("", handlers.AddClass)
	classes.Get("", handlers.InstructorClasses)
	classes.Get("/:classId", handlers.GetSingleClass)
	classes.Patch("/:classId", handlers.UpdateClass)

	instructor.Get("/upload-signature", handlers.GenerateUploadSignature)
}

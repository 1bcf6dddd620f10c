package routes

import (
	"github.com/musicplanet/server/handlers"
	"github.com/musicplanet/server/middleware"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	student := api.Group("/student", middleware.Protected(), middleware.StudentRequired())

	bookings := student.Group("/bookings")
	bookings.Get("", handlers.GetBookedClasses)
	bookings.Post("", handlers.BookClass)
	bookings.Delete("/:selectionId", handlers.DeleteBookedClass)

	payments := student.Group("/payments")
	payments.Post("/create-intent", handlers.CreatePaymentIntentHandler)
	payments.Post("", handlers.CommitClassPayment)
	payments.Get("/history", handlers.MyPaymentHistory)

	student.Get("/enrolled-classes", handlers.MyEnrolledClasses)
}

package handlers

import (
	"github.com/musicplanet/server/database"
	"github.com/musicplanet/server/middleware"
	"github.com/musicplanet/server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BookClassRequest struct {
	ClassID string `json:"class_id" validate:"required,uuid"`
}

// BookClass adds a class to the student's cart. Nothing is paid or
// reserved at this point.
func BookClass(c *fiber.Ctx) error {
	var req BookClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	classID, _ := uuid.Parse(req.ClassID)

	var class models.Class
	if err := database.DB.Where("id = ?", classID).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	selection := models.Selection{
		StudentEmail: middleware.CallerEmail(c),
		ClassID:      class.ID,
	}
	if err := database.DB.Create(&selection).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to book class"})
	}

	return c.Status(fiber.StatusCreated).JSON(selection)
}

func GetBookedClasses(c *fiber.Ctx) error {
	var selections []models.Selection
	if err := database.DB.Preload("Class").Where("student_email = ?", middleware.CallerEmail(c)).Order("created_at desc").Find(&selections).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(selections)
}

// DeleteBookedClass removes a selection from the caller's own cart.
func DeleteBookedClass(c *fiber.Ctx) error {
	selectionID := c.Params("selectionId")

	result := database.DB.Where("id = ? AND student_email = ?", selectionID, middleware.CallerEmail(c)).Delete(&models.Selection{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	return c.JSON(fiber.Map{"message": "Booking removed"})
}

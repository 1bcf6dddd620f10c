package handlers

import (
	"github.com/musicplanet/server/database"
	"github.com/musicplanet/server/services"
	"github.com/gofiber/fiber/v2"
)

func CheckState(c *fiber.Ctx) error {
	state, err := services.ComputePlatformState(database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(state)
}

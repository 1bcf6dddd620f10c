package handlers

import (
	"github.com/musicplanet/server/database"
	"github.com/musicplanet/server/models"
	"github.com/gofiber/fiber/v2"
)

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

func setUserRole(c *fiber.Ctx, role string) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Role = role
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user role"})
	}

	return c.JSON(fiber.Map{"message": "User role updated successfully", "role": role})
}

// MakeAdmin takes effect on the target's next request; roles are
// checked against the database per request, never cached.
func MakeAdmin(c *fiber.Ctx) error {
	return setUserRole(c, models.RoleAdmin)
}

func MakeInstructor(c *fiber.Ctx) error {
	return setUserRole(c, models.RoleInstructor)
}

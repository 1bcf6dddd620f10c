package middleware

import (
	config "github.com/musicplanet/server/configs"
	"github.com/musicplanet/server/database"
	"github.com/musicplanet/server/models"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// Protected authenticates the bearer token. No route body runs on a
// missing or invalid token.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// CallerEmail returns the email claim of the authenticated caller.
// Only valid behind Protected().
func CallerEmail(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

// RoleRequired checks the caller's stored role on every request, so a
// role change applies on the caller's next request.
func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := CallerEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized: caller identity missing",
			})
		}

		var user models.User
		err := database.DB.Where("email = ?", email).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Forbidden: " + role + " access required",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Server error while checking role",
			})
		}

		if user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: " + role + " access required",
			})
		}
		return c.Next()
	}
}

func StudentRequired() fiber.Handler {
	return RoleRequired(models.RoleStudent)
}

func InstructorRequired() fiber.Handler {
	return RoleRequired(models.RoleInstructor)
}

func AdminRequired() fiber.Handler {
	return RoleRequired(models.RoleAdmin)
}

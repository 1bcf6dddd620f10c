package handlers

import (
	config "github.com/musicplanet/server/configs"
	"github.com/musicplanet/server/auth"
	"github.com/musicplanet/server/database"
	"github.com/musicplanet/server/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateToken issues a 24h session token for the given email. Identity
// itself is established by the frontend's auth provider; this endpoint
// only mints the backend session.
func CreateToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := auth.IssueToken(req.Email, []byte(config.Config("JWT_SECRET")), auth.TokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": token})
}

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Email    string  `json:"email" validate:"required,email"`
	PhotoURL *string `json:"photo_url,omitempty"`
	Role     string  `json:"role,omitempty" validate:"omitempty,oneof=student instructor"`
}

// RegisterUser creates the user on first sign-in. Registering an email
// that already exists is a no-op success.
func RegisterUser(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.User
	err := database.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{"message": "user already exists"})
	}
	if err != gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

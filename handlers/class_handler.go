package handlers

import (
	"github.com/musicplanet/server/database"
	"github.com/musicplanet/server/middleware"
	"github.com/musicplanet/server/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AddClassRequest struct {
	Name           string  `json:"name" validate:"required,min=2"`
	Image          *string `json:"image,omitempty"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	AvailableSeats int     `json:"available_seats" validate:"required,gte=0"`
}

// AddClass submits a new class offering for admin review.
func AddClass(c *fiber.Ctx) error {
	var req AddClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var instructor models.User
	if err := database.DB.Where("email = ?", middleware.CallerEmail(c)).First(&instructor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found"})
	}

	class := models.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  instructor.Name,
		InstructorEmail: instructor.Email,
		Price:           req.Price,
		Status:          models.ClassPending,
		AvailableSeats:  req.AvailableSeats,
	}
	if err := database.DB.Create(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(fiber.StatusCreated).JSON(class)
}

func ListApprovedClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.DB.Where("status = ?", models.ClassApproved).Order("created_at desc").Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(classes)
}

func PopularClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.DB.Where("status = ?", models.ClassApproved).Order("enrolled_students desc").Limit(6).Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(classes)
}

func InstructorClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.DB.Where("instructor_email = ?", middleware.CallerEmail(c)).Order("created_at desc").Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(classes)
}

// loadOwnedClass fetches a class and rejects callers that do not own it.
func loadOwnedClass(c *fiber.Ctx) (*models.Class, error) {
	classID := c.Params("classId")

	var class models.Class
	if err := database.DB.Where("id = ?", classID).First(&class).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	if class.InstructorEmail != middleware.CallerEmail(c) {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden: you do not own this class"})
	}

	return &class, nil
}

func GetSingleClass(c *fiber.Ctx) error {
	class, err := loadOwnedClass(c)
	if class == nil {
		return err
	}
	return c.JSON(class)
}

type UpdateClassRequest struct {
	Name           string  `json:"name" validate:"required,min=2"`
	Image          *string `json:"image,omitempty"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	AvailableSeats int     `json:"available_seats" validate:"gte=0"`
}

func UpdateClass(c *fiber.Ctx) error {
	class, err := loadOwnedClass(c)
	if class == nil {
		return err
	}

	var req UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	class.Name = req.Name
	class.Image = req.Image
	class.Price = req.Price
	class.AvailableSeats = req.AvailableSeats
	if err := database.DB.Save(class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(class)
}

func AdminListClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.DB.Order("created_at desc").Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(classes)
}

// ApproveClass approves a class and credits the owning instructor's
// owned-class counter. Approving an already-approved class leaves the
// counter untouched.
func ApproveClass(c *fiber.Ctx) error {
	classID := c.Params("classId")

	var class models.Class
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", classID).First(&class).Error; err != nil {
			return err
		}

		if class.Status == models.ClassApproved {
			return nil
		}

		class.Status = models.ClassApproved
		if err := tx.Save(&class).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("email = ? AND role = ?", class.InstructorEmail, models.RoleInstructor).
			UpdateColumn("owned_classes", gorm.Expr("owned_classes + 1")).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve class"})
	}

	return c.JSON(fiber.Map{"message": "Class approved successfully"})
}

func DenyClass(c *fiber.Ctx) error {
	classID := c.Params("classId")

	var class models.Class
	if err := database.DB.Where("id = ?", classID).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	class.Status = models.ClassDenied
	if err := database.DB.Save(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deny class"})
	}

	return c.JSON(fiber.Map{"message": "Class denied"})
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

func SendFeedback(c *fiber.Ctx) error {
	classID := c.Params("classId")

	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var class models.Class
	if err := database.DB.Where("id = ?", classID).First(&class).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	class.Feedback = &req.Feedback
	if err := database.DB.Save(&class).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save feedback"})
	}

	return c.JSON(fiber.Map{"message": "Feedback sent to instructor"})
}

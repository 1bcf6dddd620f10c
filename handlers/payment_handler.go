package handlers

import (
	"log"

	"github.com/musicplanet/server/database"
	"github.com/musicplanet/server/middleware"
	"github.com/musicplanet/server/models"
	"github.com/musicplanet/server/payments"
	"github.com/musicplanet/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PaymentIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CreatePaymentIntentHandler reserves a charge with the gateway and
// hands the client secret back. No store is touched; an abandoned
// intent leaves no trace here.
func CreatePaymentIntentHandler(c *fiber.Ctx) error {
	var req PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	intent, err := payments.CreatePaymentIntent(services.MinorUnits(req.Amount), "usd")
	if err != nil {
		log.Printf("🔥 Stripe CreatePaymentIntent failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment could not be initiated, please try again."})
	}

	return c.JSON(fiber.Map{"clientSecret": intent.ClientSecret})
}

type ClassPaymentRequest struct {
	SelectionID     string  `json:"selection_id" validate:"required,uuid"`
	ClassID         string  `json:"class_id" validate:"required,uuid"`
	ClassName       string  `json:"class_name" validate:"required"`
	InstructorEmail string  `json:"instructor_email" validate:"required,email"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
}

// CommitClassPayment finalizes an enrollment after the client reports
// a successful gateway payment.
func CommitClassPayment(c *fiber.Ctx) error {
	var req ClassPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	selectionID, _ := uuid.Parse(req.SelectionID)
	classID, _ := uuid.Parse(req.ClassID)

	payment, seatGranted, err := services.CommitEnrollment(database.DB, services.CommitEnrollmentInput{
		SelectionID:     selectionID,
		ClassID:         classID,
		ClassName:       req.ClassName,
		StudentEmail:    middleware.CallerEmail(c),
		InstructorEmail: req.InstructorEmail,
		Amount:          req.Amount,
	})
	if err != nil {
		log.Printf("🔥 CRITICAL: enrollment commit failed for class %s: %v", req.ClassID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"payment_id":   payment.ID,
		"receipt_code": payment.ReceiptCode,
		"seat_granted": seatGranted,
		"message":      "Payment recorded successfully",
	})
}

func MyEnrolledClasses(c *fiber.Ctx) error {
	var enrollments []models.Payment
	if err := database.DB.Preload("Class").Where("student_email = ?", middleware.CallerEmail(c)).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(enrollments)
}

func MyPaymentHistory(c *fiber.Ctx) error {
	var history []models.Payment
	if err := database.DB.Where("student_email = ?", middleware.CallerEmail(c)).Order("created_at desc").Find(&history).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(history)
}

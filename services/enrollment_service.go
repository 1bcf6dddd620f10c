package services

import (
	"log"

	"github.com/musicplanet/server/models"
	"github.com/musicplanet/server/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommitEnrollmentInput struct {
	SelectionID     uuid.UUID
	ClassID         uuid.UUID
	ClassName       string
	StudentEmail    string
	InstructorEmail string
	Amount          float64
}

// MinorUnits converts a decimal amount to the gateway's integer
// representation (cents), truncating fractional cents.
func MinorUnits(amount float64) int64 {
	return int64(amount * 100)
}

// CommitEnrollment converts a paid selection into an enrollment. The
// caller asserts the external payment already succeeded; the gateway is
// not consulted again here.
//
// All four record mutations run in one transaction: the selection is
// consumed, the class seat counters move, the instructor's student
// count moves, and a ledger row is appended. The seat decrement is a
// guarded single-statement update, so two concurrent commits against a
// class with one seat left can never drive available_seats negative.
func CommitEnrollment(db *gorm.DB, input CommitEnrollmentInput) (*models.Payment, bool, error) {
	var payment models.Payment
	seatGranted := false

	err := db.Transaction(func(tx *gorm.DB) error {
		// A selection that is already gone is fine: it may have been
		// cancelled or consumed by an earlier commit.
		if err := tx.Delete(&models.Selection{}, "id = ?", input.SelectionID).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Class{}).
			Where("id = ? AND available_seats > 0", input.ClassID).
			UpdateColumns(map[string]interface{}{
				"available_seats":   gorm.Expr("available_seats - 1"),
				"enrolled_students": gorm.Expr("enrolled_students + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		seatGranted = result.RowsAffected > 0
		if !seatGranted {
			log.Printf("⚠️ Class %s has no seats left, recording payment without a seat decrement", input.ClassID)
		}

		if err := tx.Model(&models.User{}).
			Where("email = ? AND role = ?", input.InstructorEmail, models.RoleInstructor).
			UpdateColumn("enrolled_students", gorm.Expr("enrolled_students + 1")).Error; err != nil {
			return err
		}

		receiptCode, err := utils.GenerateReceiptCode(tx)
		if err != nil {
			return err
		}

		payment = models.Payment{
			StudentEmail:    input.StudentEmail,
			ClassID:         input.ClassID,
			ClassName:       input.ClassName,
			InstructorEmail: input.InstructorEmail,
			Amount:          input.Amount,
			ReceiptCode:     receiptCode,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, false, err
	}

	return &payment, seatGranted, nil
}

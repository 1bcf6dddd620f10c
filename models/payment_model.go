package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is an append-only ledger entry. Exactly one row is created
// per completed enrollment commit.
type Payment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentEmail    string    `gorm:"size:255;not null;index" json:"student_email"`
	ClassID         uuid.UUID `gorm:"type:uuid;not null" json:"class_id"`
	ClassName       string    `gorm:"size:255;not null" json:"class_name"`
	InstructorEmail string    `gorm:"size:255;not null" json:"instructor_email"`
	Amount          float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	ReceiptCode     string    `gorm:"size:12;unique" json:"receipt_code"`

	Class Class `gorm:"foreignkey:ClassID" json:"class,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

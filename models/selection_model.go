package models

import (
	"time"

	"github.com/google/uuid"
)

// Selection is a class a student has added to their cart but not yet
// paid for. It is deleted either by the student or by a successful
// enrollment commit.
type Selection struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentEmail string    `gorm:"size:255;not null;index" json:"student_email"`
	ClassID      uuid.UUID `gorm:"type:uuid;not null" json:"class_id"`

	Class Class `gorm:"foreignkey:ClassID" json:"class,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

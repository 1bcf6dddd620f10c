package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClassPending  = "pending"
	ClassApproved = "approved"
	ClassDenied   = "denied"
)

type Class struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Image           *string   `gorm:"size:255" json:"image"`
	InstructorName  string    `gorm:"size:255;not null" json:"instructor_name"`
	InstructorEmail string    `gorm:"size:255;not null;index" json:"instructor_email"`
	Price           float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Status          string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Feedback        *string   `gorm:"type:text" json:"feedback"`

	// AvailableSeats never goes below zero; decrements are guarded by a
	// row lock in the enrollment workflow.
	AvailableSeats   int `gorm:"not null" json:"available_seats"`
	EnrolledStudents int `gorm:"not null;default:0" json:"enrolled_students"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

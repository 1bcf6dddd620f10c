package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Email            string    `gorm:"size:255;not null;unique" json:"email"`
	Password         *string   `gorm:"size:255" json:"-"`
	Role             string    `gorm:"size:20;not null;default:''" json:"role"`
	PhotoURL         *string   `gorm:"size:255" json:"photo_url"`

	// Instructor counters, maintained by the enrollment workflow and
	// class approval. Always zero for students.
	EnrolledStudents int `gorm:"not null;default:0" json:"enrolled_students"`
	OwnedClasses     int `gorm:"not null;default:0" json:"owned_classes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

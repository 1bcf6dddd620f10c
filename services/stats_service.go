package services

import (
	"github.com/musicplanet/server/models"
	"gorm.io/gorm"
)

type PlatformState struct {
	TotalUsers       int64 `json:"total_users"`
	ApprovedClasses  int64 `json:"approved_classes"`
	TotalStudents    int64 `json:"total_students"`
	TotalInstructors int64 `json:"total_instructors"`
}

// ComputePlatformState counts users and classes for the admin
// dashboard. Full-table counts, fine at this scale.
func ComputePlatformState(db *gorm.DB) (*PlatformState, error) {
	var state PlatformState

	if err := db.Model(&models.User{}).Count(&state.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Class{}).Where("status = ?", models.ClassApproved).Count(&state.ApprovedClasses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&state.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleInstructor).Count(&state.TotalInstructors).Error; err != nil {
		return nil, err
	}

	return &state, nil
}

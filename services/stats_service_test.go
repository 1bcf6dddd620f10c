package services

import (
	"testing"

	"github.com/musicplanet/server/models"
	"github.com/stretchr/testify/require"
)

func TestComputePlatformState(t *testing.T) {
	db := newTestDB(t)

	users := []models.User{
		{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin},
		{Name: "S1", Email: "s1@example.com", Role: models.RoleStudent},
		{Name: "S2", Email: "s2@example.com", Role: models.RoleStudent},
		{Name: "I1", Email: "i1@example.com", Role: models.RoleInstructor},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}

	classes := []models.Class{
		{Name: "Piano", InstructorName: "I1", InstructorEmail: "i1@example.com", Price: 10, Status: models.ClassApproved, AvailableSeats: 5},
		{Name: "Guitar", InstructorName: "I1", InstructorEmail: "i1@example.com", Price: 10, Status: models.ClassPending, AvailableSeats: 5},
		{Name: "Cello", InstructorName: "I1", InstructorEmail: "i1@example.com", Price: 10, Status: models.ClassDenied, AvailableSeats: 5},
	}
	for i := range classes {
		require.NoError(t, db.Create(&classes[i]).Error)
	}

	state, err := ComputePlatformState(db)
	require.NoError(t, err)
	require.EqualValues(t, 4, state.TotalUsers)
	require.EqualValues(t, 1, state.ApprovedClasses)
	require.EqualValues(t, 2, state.TotalStudents)
	require.EqualValues(t, 1, state.TotalInstructors)
}

func TestComputePlatformState_Empty(t *testing.T) {
	db := newTestDB(t)

	state, err := ComputePlatformState(db)
	require.NoError(t, err)
	require.Zero(t, state.TotalUsers)
	require.Zero(t, state.ApprovedClasses)
	require.Zero(t, state.TotalStudents)
	require.Zero(t, state.TotalInstructors)
}

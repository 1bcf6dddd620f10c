package services

import (
	"testing"

	"github.com/musicplanet/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Selection{},
		&models.Payment{},
	))
	return db
}

func seedEnrollmentFixture(t *testing.T, db *gorm.DB, seats int) (*models.User, *models.Class, *models.Selection) {
	t.Helper()

	instructor := &models.User{
		Name:  "Ada Instructor",
		Email: "ada@example.com",
		Role:  models.RoleInstructor,
	}
	require.NoError(t, db.Create(instructor).Error)

	class := &models.Class{
		Name:            "Violin Basics",
		InstructorName:  instructor.Name,
		InstructorEmail: instructor.Email,
		Price:           50,
		Status:          models.ClassApproved,
		AvailableSeats:  seats,
	}
	require.NoError(t, db.Create(class).Error)

	selection := &models.Selection{
		StudentEmail: "sam@example.com",
		ClassID:      class.ID,
	}
	require.NoError(t, db.Create(selection).Error)

	return instructor, class, selection
}

func TestCommitEnrollment_EndToEnd(t *testing.T) {
	db := newTestDB(t)
	instructor, class, selection := seedEnrollmentFixture(t, db, 3)

	payment, seatGranted, err := CommitEnrollment(db, CommitEnrollmentInput{
		SelectionID:     selection.ID,
		ClassID:         class.ID,
		ClassName:       class.Name,
		StudentEmail:    "sam@example.com",
		InstructorEmail: instructor.Email,
		Amount:          50,
	})
	require.NoError(t, err)
	require.True(t, seatGranted)
	require.Len(t, payment.ReceiptCode, 10)

	var selectionCount int64
	require.NoError(t, db.Model(&models.Selection{}).Where("id = ?", selection.ID).Count(&selectionCount).Error)
	require.Zero(t, selectionCount, "selection must be consumed")

	var gotClass models.Class
	require.NoError(t, db.First(&gotClass, "id = ?", class.ID).Error)
	require.Equal(t, 2, gotClass.AvailableSeats)
	require.Equal(t, 1, gotClass.EnrolledStudents)

	var gotInstructor models.User
	require.NoError(t, db.First(&gotInstructor, "email = ?", instructor.Email).Error)
	require.Equal(t, 1, gotInstructor.EnrolledStudents)

	var gotPayment models.Payment
	require.NoError(t, db.First(&gotPayment, "class_id = ?", class.ID).Error)
	require.Equal(t, 50.0, gotPayment.Amount)
	require.Equal(t, "sam@example.com", gotPayment.StudentEmail)
}

func TestCommitEnrollment_NoSeatsStillRecordsPayment(t *testing.T) {
	db := newTestDB(t)
	instructor, class, selection := seedEnrollmentFixture(t, db, 0)

	payment, seatGranted, err := CommitEnrollment(db, CommitEnrollmentInput{
		SelectionID:     selection.ID,
		ClassID:         class.ID,
		ClassName:       class.Name,
		StudentEmail:    "sam@example.com",
		InstructorEmail: instructor.Email,
		Amount:          50,
	})
	require.NoError(t, err)
	require.False(t, seatGranted)
	require.NotNil(t, payment)

	var gotClass models.Class
	require.NoError(t, db.First(&gotClass, "id = ?", class.ID).Error)
	require.Equal(t, 0, gotClass.AvailableSeats, "seats must never go negative")
	require.Equal(t, 0, gotClass.EnrolledStudents)

	var paymentCount int64
	require.NoError(t, db.Model(&models.Payment{}).Where("class_id = ?", class.ID).Count(&paymentCount).Error)
	require.EqualValues(t, 1, paymentCount)
}

func TestCommitEnrollment_MissingSelectionTolerated(t *testing.T) {
	db := newTestDB(t)
	instructor, class, _ := seedEnrollmentFixture(t, db, 2)

	_, seatGranted, err := CommitEnrollment(db, CommitEnrollmentInput{
		SelectionID:     uuid.New(),
		ClassID:         class.ID,
		ClassName:       class.Name,
		StudentEmail:    "sam@example.com",
		InstructorEmail: instructor.Email,
		Amount:          50,
	})
	require.NoError(t, err)
	require.True(t, seatGranted)
}

func TestCommitEnrollment_LastSeatDecrementedOnce(t *testing.T) {
	db := newTestDB(t)
	instructor, class, selection := seedEnrollmentFixture(t, db, 1)

	input := CommitEnrollmentInput{
		SelectionID:     selection.ID,
		ClassID:         class.ID,
		ClassName:       class.Name,
		StudentEmail:    "sam@example.com",
		InstructorEmail: instructor.Email,
		Amount:          50,
	}

	_, firstGranted, err := CommitEnrollment(db, input)
	require.NoError(t, err)
	require.True(t, firstGranted)

	_, secondGranted, err := CommitEnrollment(db, input)
	require.NoError(t, err)
	require.False(t, secondGranted, "second commit must observe zero seats")

	var gotClass models.Class
	require.NoError(t, db.First(&gotClass, "id = ?", class.ID).Error)
	require.Equal(t, 0, gotClass.AvailableSeats)
	require.Equal(t, 1, gotClass.EnrolledStudents)
}

func TestCommitEnrollment_NonInstructorCounterUntouched(t *testing.T) {
	db := newTestDB(t)

	bystander := &models.User{Name: "Bo", Email: "bo@example.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(bystander).Error)

	class := &models.Class{
		Name:            "Drum Circle",
		InstructorName:  bystander.Name,
		InstructorEmail: bystander.Email,
		Price:           20,
		Status:          models.ClassApproved,
		AvailableSeats:  5,
	}
	require.NoError(t, db.Create(class).Error)

	_, _, err := CommitEnrollment(db, CommitEnrollmentInput{
		SelectionID:     uuid.New(),
		ClassID:         class.ID,
		ClassName:       class.Name,
		StudentEmail:    "sam@example.com",
		InstructorEmail: bystander.Email,
		Amount:          20,
	})
	require.NoError(t, err)

	var got models.User
	require.NoError(t, db.First(&got, "email = ?", bystander.Email).Error)
	require.Zero(t, got.EnrolledStudents)
}

func TestMinorUnits(t *testing.T) {
	require.EqualValues(t, 5000, MinorUnits(50))
	require.EqualValues(t, 1250, MinorUnits(12.5))
	require.EqualValues(t, 0, MinorUnits(0))
}

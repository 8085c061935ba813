package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/app/store"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
)

func TestCreateStudentViaAdmin(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.accounts.CreateStudent(CreateStudentRequest{ID: "A2", Username: "bob", Password: "pw2"}))

	student, err := f.accounts.GetStudent("A2")
	require.NoError(t, err)
	assert.Equal(t, 0.0, student.Balance)
	assert.Equal(t, models.NotProvided, student.Address)
	assert.Equal(t, models.NotProvided, student.Phone)

	err = f.accounts.CreateStudent(CreateStudentRequest{ID: "A2", Username: "other", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
}

func TestCreateStudentValidation(t *testing.T) {
	f := newFixture(t)
	err := f.accounts.CreateStudent(CreateStudentRequest{ID: "", Username: "bob", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudentKeepsBalance(t *testing.T) {
	f := newFixture(t)
	balance := 100.0
	require.NoError(t, f.accounts.CreateStudent(CreateStudentRequest{ID: "A1", Username: "alice", Password: "pw"}))
	require.NoError(t, f.students.Update("A1", store.StudentUpdate{Balance: &balance}))

	require.NoError(t, f.accounts.UpdateStudent("A1", UpdateStudentRequest{
		Username: "alice2",
		Password: "pw2",
	}))

	student, err := f.accounts.GetStudent("A1")
	require.NoError(t, err)
	assert.Equal(t, "alice2", student.Username)
	assert.Equal(t, 100.0, student.Balance)
	assert.Equal(t, models.NotProvided, student.Phone)
}

func TestDeleteStudent(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.accounts.CreateStudent(CreateStudentRequest{ID: "A1", Username: "alice", Password: "pw"}))
	require.NoError(t, f.accounts.DeleteStudent("A1"))
	assert.ErrorIs(t, f.accounts.DeleteStudent("A1"), apperrors.ErrNotFound)
}

func TestUpdateGuidanceProfile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.guidance.Create(&models.Guidance{Username: "rev", Password: "pw", Phone: "1", Department: "Finance"}))

	newKey, err := f.accounts.UpdateGuidance("rev", UpdateGuidanceRequest{
		Username:   "rev2",
		Password:   "pw2",
		Phone:      "2",
		Department: "Scholarship",
	})
	require.NoError(t, err)
	assert.Equal(t, "rev2", newKey)

	_, err = f.accounts.GetGuidance("rev")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	moved, err := f.accounts.GetGuidance("rev2")
	require.NoError(t, err)
	assert.Equal(t, "Scholarship", moved.Department)
}

func TestUpdateGuidanceRejectsUnknownDepartment(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.guidance.Create(&models.Guidance{Username: "rev", Password: "pw", Phone: "1", Department: "Finance"}))

	// "Counselling" is an aid type; the guidance dropdown spells it "Counseling"
	_, err := f.accounts.UpdateGuidance("rev", UpdateGuidanceRequest{
		Username:   "rev",
		Password:   "pw",
		Phone:      "1",
		Department: "Counselling",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

package services

import (
	"fmt"

	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/app/store"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
	"github.com/uniaid/aidtrack/internal/pkg/validation"
)

// CreateStudentRequest is the payload for the admin "add user" operation.
// Unlike self-service registration, the administrator picks the ID.
type CreateStudentRequest struct {
	ID       string `validate:"required"`
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// UpdateStudentRequest is the payload for student profile edits, both
// self-service and administrative. The balance is never part of the payload
// and is carried forward by the store.
type UpdateStudentRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Phone    string
	Address  string
}

// UpdateGuidanceRequest is the payload for guidance profile edits. Changing
// the username moves the record under a new store key. The department must be
// one of models.GuidanceDepartments.
type UpdateGuidanceRequest struct {
	Username   string `validate:"required"`
	Password   string `validate:"required"`
	Phone      string `validate:"required"`
	Department string `validate:"required"`
}

// AccountService exposes the account management operations the admin and
// head-administrator surfaces call.
type AccountService struct {
	students *store.StudentStore
	guidance *store.GuidanceStore
}

// NewAccountService creates a new account service instance.
func NewAccountService(students *store.StudentStore, guidance *store.GuidanceStore) *AccountService {
	return &AccountService{
		students: students,
		guidance: guidance,
	}
}

// CreateStudent adds a student account with the given ID, empty contact
// fields and a zero balance.
func (s *AccountService) CreateStudent(req CreateStudentRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	student := &models.Student{
		ID:       req.ID,
		Username: req.Username,
		Password: req.Password,
		Balance:  0,
		Address:  models.NotProvided,
		Phone:    models.NotProvided,
	}
	if err := s.students.Create(student); err != nil {
		return err
	}
	logger.Info().Str("id", req.ID).Msg("Student account created")
	return nil
}

// GetStudent retrieves a student by ID.
func (s *AccountService) GetStudent(id string) (*models.Student, error) {
	return s.students.Get(id)
}

// ListStudents returns every student account.
func (s *AccountService) ListStudents() []*models.Student {
	return s.students.List()
}

// UpdateStudent applies a profile edit. Blank contact fields become the
// sentinel; the ID key and the balance are untouched.
func (s *AccountService) UpdateStudent(id string, req UpdateStudentRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	address := orNotProvided(req.Address)
	phone := orNotProvided(req.Phone)
	return s.students.Update(id, store.StudentUpdate{
		Username: &req.Username,
		Password: &req.Password,
		Address:  &address,
		Phone:    &phone,
	})
}

// DeleteStudent removes a student account.
func (s *AccountService) DeleteStudent(id string) error {
	if err := s.students.Delete(id); err != nil {
		return err
	}
	logger.Info().Str("id", id).Msg("Student account deleted")
	return nil
}

// GetGuidance retrieves a guidance account by username.
func (s *AccountService) GetGuidance(username string) (*models.Guidance, error) {
	return s.guidance.Get(username)
}

// ListGuidance returns every guidance account.
func (s *AccountService) ListGuidance() []*models.Guidance {
	return s.guidance.List()
}

// UpdateGuidance applies a guidance profile edit and returns the username the
// record now lives under.
func (s *AccountService) UpdateGuidance(username string, req UpdateGuidanceRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}
	if !models.ValidGuidanceDepartment(req.Department) {
		return "", fmt.Errorf("department %q: %w", req.Department, apperrors.ErrValidationFailed)
	}
	err := s.guidance.Update(username, store.GuidanceUpdate{
		Username:   &req.Username,
		Password:   &req.Password,
		Phone:      &req.Phone,
		Department: &req.Department,
	})
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound, apperrors.ErrDuplicateKey) {
			logger.Error().Err(err).Str("username", username).Msg("Guidance update failed")
		}
		return "", err
	}
	return req.Username, nil
}

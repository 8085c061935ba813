package services

import (
	"fmt"

	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/app/store"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
	"github.com/uniaid/aidtrack/internal/pkg/validation"
)

// Session identifies which store a credential was found in. That is the only
// notion of authorization the account layer has; the department gate in the
// aid workflow is enforced separately.
type Session struct {
	Role          models.Role
	Administrator *models.Administrator
	Student       *models.Student
	Guidance      *models.Guidance
}

// RegisterRequest is the self-service registration payload.
type RegisterRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Phone    string
	Address  string
}

// AuthService resolves credentials against the four account stores.
//
// Passwords are stored and compared as plain strings. That matches the data
// files this system inherits and is a known weakness; hardening is out of
// scope here.
type AuthService struct {
	admins     *store.AdministratorStore
	students   *store.StudentStore
	guidance   *store.GuidanceStore
	headAdmins *store.AdministratorStore
}

// NewAuthService creates a new auth service instance.
func NewAuthService(admins *store.AdministratorStore, students *store.StudentStore, guidance *store.GuidanceStore, headAdmins *store.AdministratorStore) *AuthService {
	return &AuthService{
		admins:     admins,
		students:   students,
		guidance:   guidance,
		headAdmins: headAdmins,
	}
}

// Login tries the stores in a fixed order: administrator, student, guidance,
// head administrator. Students log in with their account ID, the other roles
// with their username.
func (s *AuthService) Login(username, password string) (*Session, error) {
	if admin, err := s.admins.Get(username); err == nil && admin.Password == password {
		return &Session{Role: models.RoleAdministrator, Administrator: admin}, nil
	}
	if student, err := s.students.Get(username); err == nil && student.Password == password {
		return &Session{Role: models.RoleStudent, Student: student}, nil
	}
	if guidance, err := s.guidance.Get(username); err == nil && guidance.Password == password {
		return &Session{Role: models.RoleGuidance, Guidance: guidance}, nil
	}
	if head, err := s.headAdmins.Get(username); err == nil && head.Password == password {
		return &Session{Role: models.RoleHeadAdministrator, Administrator: head}, nil
	}
	return nil, apperrors.ErrInvalidCredentials
}

// Register creates a student account with a freshly minted ID and returns it.
// Usernames must be unique across the student store at registration time;
// blank contact fields become the "Not Provided" sentinel and the balance
// starts at zero.
func (s *AuthService) Register(req RegisterRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}
	if s.students.UsernameExists(req.Username) {
		return "", fmt.Errorf("username %q: %w", req.Username, apperrors.ErrUsernameTaken)
	}

	student := &models.Student{
		ID:       s.students.NextID(),
		Username: req.Username,
		Password: req.Password,
		Balance:  0,
		Address:  orNotProvided(req.Address),
		Phone:    orNotProvided(req.Phone),
	}
	if err := s.students.Create(student); err != nil {
		return "", err
	}

	logger.Info().Str("id", student.ID).Str("username", student.Username).Msg("Student registered")
	return student.ID, nil
}

// UpdatePassword changes the password of the account a session belongs to,
// dispatching on the session role to the store that owns the record.
func (s *AuthService) UpdatePassword(session *Session, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("password must not be empty: %w", apperrors.ErrValidationFailed)
	}

	switch session.Role {
	case models.RoleAdministrator:
		return s.admins.Update(session.Administrator.Username, newPassword)
	case models.RoleHeadAdministrator:
		return s.headAdmins.Update(session.Administrator.Username, newPassword)
	case models.RoleStudent:
		return s.students.Update(session.Student.ID, store.StudentUpdate{Password: &newPassword})
	case models.RoleGuidance:
		return s.guidance.Update(session.Guidance.Username, store.GuidanceUpdate{Password: &newPassword})
	}
	return fmt.Errorf("role %q: %w", session.Role, apperrors.ErrUnknownRole)
}

func orNotProvided(v string) string {
	if v == "" {
		return models.NotProvided
	}
	return v
}

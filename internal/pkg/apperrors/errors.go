package apperrors

import "errors"

// Common errors
var (
	// Store errors
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("record with this key already exists")

	// Codec errors
	ErrMalformedRecord = errors.New("malformed record")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Workflow errors
	ErrDepartmentMismatch = errors.New("reviewer department does not match request aid type")
	ErrAlreadyDecided     = errors.New("request has already been decided")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Account errors
var (
	ErrUsernameTaken  = errors.New("username already taken")
	ErrUnknownAidType = errors.New("unknown aid type")
	ErrUnknownRole    = errors.New("unknown account role")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewNotFoundError creates a new custom error for an absent key with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewDuplicateKeyError creates a new custom error for a colliding key with a message
func NewDuplicateKeyError(message string) error {
	return &CustomError{
		Err:     ErrDuplicateKey,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

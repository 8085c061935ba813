package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
)

// validate is the shared validator instance; validator instances cache
// struct metadata and are meant to be long-lived.
var validate = validator.New()

// Struct validates a tagged payload struct and folds any field errors into a
// single ErrValidationFailed-wrapping error carrying the failed field names
// as details.
func Struct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	fields := make([]string, 0, len(verrs))
	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		details[fe.Field()] = fe.Tag()
	}
	message := "validation failed: " + strings.Join(fields, ", ")
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, message).WithDetails(details)
}

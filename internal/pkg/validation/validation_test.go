package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
)

type payload struct {
	Name  string `validate:"required"`
	Phone string
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(payload{Name: "x"}))
}

func TestStructCollectsFieldDetails(t *testing.T) {
	err := Struct(payload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var cerr *apperrors.CustomError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "required", cerr.Details["Name"])
	assert.Contains(t, cerr.Error(), "Name")
}

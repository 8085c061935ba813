package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
)

func TestAdministratorRoundTrip(t *testing.T) {
	admin := &models.Administrator{Username: "admin", Password: "secret"}

	decoded, err := DecodeAdministrator(EncodeAdministrator(admin))
	require.NoError(t, err)
	assert.Equal(t, admin, decoded)
}

func TestDecodeAdministratorMalformed(t *testing.T) {
	for _, line := range []string{"justusername", "a:b:c"} {
		_, err := DecodeAdministrator(line)
		assert.ErrorIs(t, err, apperrors.ErrMalformedRecord, "line %q", line)
	}
}

func TestGuidanceRoundTrip(t *testing.T) {
	guidance := &models.Guidance{
		Username:   "counselor1",
		Password:   "pw",
		Phone:      "555-2222",
		Department: "Finance",
	}

	decoded, err := DecodeGuidance(EncodeGuidance(guidance))
	require.NoError(t, err)
	assert.Equal(t, guidance, decoded)
}

func TestDecodeGuidanceMalformed(t *testing.T) {
	_, err := DecodeGuidance("user:pw:555")
	assert.ErrorIs(t, err, apperrors.ErrMalformedRecord)
}

func TestDecodeStudentFullRecord(t *testing.T) {
	student, err := DecodeStudent("A1:alice:pw1:100.0|12 Main St|555-1111")
	require.NoError(t, err)

	assert.Equal(t, "A1", student.ID)
	assert.Equal(t, "alice", student.Username)
	assert.Equal(t, "pw1", student.Password)
	assert.Equal(t, 100.0, student.Balance)
	assert.Equal(t, "12 Main St", student.Address)
	assert.Equal(t, "555-1111", student.Phone)
}

func TestStudentRoundTrip(t *testing.T) {
	students := []*models.Student{
		{ID: "A1", Username: "alice", Password: "pw1", Balance: 100.0, Address: "12 Main St", Phone: "555-1111"},
		{ID: "A2", Username: "bob", Password: "pw2", Balance: 0, Address: models.NotProvided, Phone: models.NotProvided},
		{ID: "A3", Username: "carol", Password: "pw3", Balance: 12.5, Address: "Dorm 4", Phone: models.NotProvided},
	}
	for _, student := range students {
		decoded, err := DecodeStudent(EncodeStudent(student))
		require.NoError(t, err)
		assert.Equal(t, student, decoded)
	}
}

func TestDecodeStudentPlaceholders(t *testing.T) {
	student, err := DecodeStudent("A5:dave:pw:0.0|-|-")
	require.NoError(t, err)
	assert.Equal(t, models.NotProvided, student.Address)
	assert.Equal(t, models.NotProvided, student.Phone)

	// contact subfields may be absent entirely
	student, err = DecodeStudent("A6:erin:pw:3.5")
	require.NoError(t, err)
	assert.Equal(t, 3.5, student.Balance)
	assert.Equal(t, models.NotProvided, student.Address)
	assert.Equal(t, models.NotProvided, student.Phone)
}

func TestDecodeStudentEmptySubfieldIsKept(t *testing.T) {
	// only "-" and absence mean "Not Provided"; an empty subfield stays empty
	student, err := DecodeStudent("A7:finn:pw:100.0||555-9999")
	require.NoError(t, err)
	assert.Equal(t, "", student.Address)
	assert.Equal(t, "555-9999", student.Phone)

	student, err = DecodeStudent("A8:gina:pw:2.0|Dorm 1|")
	require.NoError(t, err)
	assert.Equal(t, "Dorm 1", student.Address)
	assert.Equal(t, "", student.Phone)
}

func TestDecodeStudentMalformed(t *testing.T) {
	_, err := DecodeStudent("A1:alice:pw1")
	assert.ErrorIs(t, err, apperrors.ErrMalformedRecord)

	_, err = DecodeStudent("A1:alice:pw1:notanumber|x|y")
	assert.ErrorIs(t, err, apperrors.ErrMalformedRecord)
}

func TestEncodeStudentIntegralBalance(t *testing.T) {
	student := &models.Student{ID: "A2", Username: "bob", Password: "pw2", Balance: 0, Address: models.NotProvided, Phone: models.NotProvided}
	assert.Equal(t, "A2:bob:pw2:0.0|Not Provided|Not Provided", EncodeStudent(student))
}

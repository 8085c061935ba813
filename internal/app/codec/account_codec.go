// Package codec maps account records to and from the line formats used by
// the flat account files:
//
//	admin.txt / headminister.txt:  username:password
//	guidance.txt:                  username:password:phone:department
//	users.txt:                     id:username:password:balance|address|phone
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
)

const (
	fieldSep   = ":"
	contactSep = "|"

	// placeholder accepted in legacy files for an absent contact field
	legacyBlank = "-"
)

// DecodeAdministrator parses a username:password line.
func DecodeAdministrator(line string) (*models.Administrator, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected 2 fields, got %d", apperrors.ErrMalformedRecord, len(parts))
	}
	return &models.Administrator{Username: parts[0], Password: parts[1]}, nil
}

// EncodeAdministrator renders a record back to its line form.
func EncodeAdministrator(a *models.Administrator) string {
	return a.Username + fieldSep + a.Password
}

// DecodeGuidance parses a username:password:phone:department line.
func DecodeGuidance(line string) (*models.Guidance, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", apperrors.ErrMalformedRecord, len(parts))
	}
	return &models.Guidance{
		Username:   parts[0],
		Password:   parts[1],
		Phone:      parts[2],
		Department: parts[3],
	}, nil
}

// EncodeGuidance renders a record back to its line form.
func EncodeGuidance(g *models.Guidance) string {
	return strings.Join([]string{g.Username, g.Password, g.Phone, g.Department}, fieldSep)
}

// DecodeStudent parses an id:username:password:balance|address|phone line.
// Address and phone fall back to the "Not Provided" sentinel only when the
// subfield is absent or equals the legacy "-" placeholder; an empty subfield
// is kept as the empty string, matching the legacy reader. A balance that
// does not parse as a decimal makes the whole line malformed.
func DecodeStudent(line string) (*models.Student, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", apperrors.ErrMalformedRecord, len(parts))
	}

	contact := strings.Split(parts[3], contactSep)
	balance, err := strconv.ParseFloat(contact[0], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad balance %q: %v", apperrors.ErrMalformedRecord, contact[0], err)
	}

	student := &models.Student{
		ID:       parts[0],
		Username: parts[1],
		Password: parts[2],
		Balance:  balance,
		Address:  models.NotProvided,
		Phone:    models.NotProvided,
	}
	if len(contact) > 1 && contact[1] != legacyBlank {
		student.Address = contact[1]
	}
	if len(contact) > 2 && contact[2] != legacyBlank {
		student.Phone = contact[2]
	}
	return student, nil
}

// EncodeStudent renders a record back to its line form. The sentinel values
// are written verbatim, matching what the legacy writer produced.
func EncodeStudent(s *models.Student) string {
	contact := strings.Join([]string{formatBalance(s.Balance), s.Address, s.Phone}, contactSep)
	return strings.Join([]string{s.ID, s.Username, s.Password, contact}, fieldSep)
}

// formatBalance keeps integral balances in the x.0 form the legacy files use
// so a freshly created account encodes as "0.0", not "0".
func formatBalance(b float64) string {
	text := strconv.FormatFloat(b, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/uniaid/aidtrack/internal/app/codec"
	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
)

// studentIDPrefix is the letter student IDs are minted with ("A1", "A2", ...).
const studentIDPrefix = "A"

// StudentUpdate carries the fields an update may change. Nil fields keep
// their current value, so a profile edit never clobbers the balance.
type StudentUpdate struct {
	Username *string
	Password *string
	Address  *string
	Phone    *string
	Balance  *float64
}

// StudentStore handles the users.txt account file, keyed by student ID.
type StudentStore struct {
	path     string
	students map[string]*models.Student
	// highest numeric ID suffix seen, so minted IDs stay unique even after
	// deletions shrink the map
	maxSeq int
}

// NewStudentStore creates a store backed by the given file.
func NewStudentStore(path string) *StudentStore {
	return &StudentStore{
		path:     path,
		students: make(map[string]*models.Student),
	}
}

// Load reads the backing file into memory. A missing file yields an empty
// store; malformed lines are logged and skipped.
func (s *StudentStore) Load() error {
	lines, err := readLines(s.path)
	if err != nil {
		return err
	}

	s.students = make(map[string]*models.Student, len(lines))
	s.maxSeq = 0
	for _, line := range lines {
		student, err := codec.DecodeStudent(line)
		if err != nil {
			logger.Warn().Err(err).Str("file", s.path).Str("line", line).Msg("Skipping malformed student record")
			continue
		}
		s.students[student.ID] = student
		if seq, ok := idSequence(student.ID, studentIDPrefix); ok && seq > s.maxSeq {
			s.maxSeq = seq
		}
	}
	return nil
}

// Get retrieves a student by ID.
func (s *StudentStore) Get(id string) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("student %q not found", id))
	}
	return student, nil
}

// List returns all students ordered by ID.
func (s *StudentStore) List() []*models.Student {
	students := make([]*models.Student, 0, len(s.students))
	for _, st := range s.students {
		students = append(students, st)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

// Len returns the number of students in the store.
func (s *StudentStore) Len() int {
	return len(s.students)
}

// UsernameExists reports whether any student already displays the given
// username. Registration enforces uniqueness through this; nothing else does.
func (s *StudentStore) UsernameExists(username string) bool {
	for _, st := range s.students {
		if st.Username == username {
			return true
		}
	}
	return false
}

// NextID returns the ID the next registration will be assigned.
func (s *StudentStore) NextID() string {
	return studentIDPrefix + strconv.Itoa(s.maxSeq+1)
}

// Create inserts a new student and appends its line to the backing file.
func (s *StudentStore) Create(student *models.Student) error {
	if _, exists := s.students[student.ID]; exists {
		return apperrors.NewDuplicateKeyError(fmt.Sprintf("student %q already exists", student.ID))
	}
	if err := appendLine(s.path, codec.EncodeStudent(student)); err != nil {
		return err
	}
	s.students[student.ID] = student
	if seq, ok := idSequence(student.ID, studentIDPrefix); ok && seq > s.maxSeq {
		s.maxSeq = seq
	}
	return nil
}

// Update applies the supplied fields to a student and rewrites the backing
// file. The ID key never changes, even when the username does.
func (s *StudentStore) Update(id string, upd StudentUpdate) error {
	student, ok := s.students[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("student %q not found", id))
	}

	previous := *student
	if upd.Username != nil {
		student.Username = *upd.Username
	}
	if upd.Password != nil {
		student.Password = *upd.Password
	}
	if upd.Address != nil {
		student.Address = *upd.Address
	}
	if upd.Phone != nil {
		student.Phone = *upd.Phone
	}
	if upd.Balance != nil {
		student.Balance = *upd.Balance
	}

	if err := s.persist(); err != nil {
		*student = previous
		return err
	}
	return nil
}

// Delete removes a student and rewrites the backing file.
func (s *StudentStore) Delete(id string) error {
	student, ok := s.students[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("student %q not found", id))
	}
	delete(s.students, id)
	if err := s.persist(); err != nil {
		s.students[id] = student
		return err
	}
	return nil
}

func (s *StudentStore) persist() error {
	lines := make([]string, 0, len(s.students))
	for _, student := range s.List() {
		lines = append(lines, codec.EncodeStudent(student))
	}
	return writeLines(s.path, lines)
}

// idSequence extracts the numeric suffix of an ID like "A12". IDs supplied
// manually by an administrator may not follow the scheme; those do not
// advance the sequence.
func idSequence(id, prefix string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	seq, err := strconv.Atoi(id[len(prefix):])
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

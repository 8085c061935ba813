package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
)

func newStudentStore(t *testing.T) *StudentStore {
	t.Helper()
	s := NewStudentStore(filepath.Join(t.TempDir(), "users.txt"))
	require.NoError(t, s.Load())
	return s
}

func newStudent(id, username string) *models.Student {
	return &models.Student{
		ID:       id,
		Username: username,
		Password: "pw",
		Balance:  0,
		Address:  models.NotProvided,
		Phone:    models.NotProvided,
	}
}

func TestStudentStoreLoadFullRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte("A1:alice:pw1:100.0|12 Main St|555-1111\n"), 0o644))

	s := NewStudentStore(path)
	require.NoError(t, s.Load())

	student, err := s.Get("A1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, student.Balance)
	assert.Equal(t, "12 Main St", student.Address)
	assert.Equal(t, "555-1111", student.Phone)
}

func TestStudentStoreCreateDefaultsSurviveReload(t *testing.T) {
	s := newStudentStore(t)
	require.NoError(t, s.Create(newStudent("A2", "bob")))

	reloaded := NewStudentStore(s.path)
	require.NoError(t, reloaded.Load())

	student, err := reloaded.Get("A2")
	require.NoError(t, err)
	assert.Equal(t, 0.0, student.Balance)
	assert.Equal(t, models.NotProvided, student.Address)
	assert.Equal(t, models.NotProvided, student.Phone)
}

func TestStudentStoreUpdatePreservesBalance(t *testing.T) {
	s := newStudentStore(t)
	student := newStudent("A1", "alice")
	student.Balance = 250.75
	require.NoError(t, s.Create(student))

	username := "alice2"
	phone := "555-9999"
	require.NoError(t, s.Update("A1", StudentUpdate{Username: &username, Phone: &phone}))

	updated, err := s.Get("A1")
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "555-9999", updated.Phone)
	assert.Equal(t, 250.75, updated.Balance)

	// the ID key never follows the username
	reloaded := NewStudentStore(s.path)
	require.NoError(t, reloaded.Load())
	_, err = reloaded.Get("A1")
	assert.NoError(t, err)
}

func TestStudentStoreExplicitBalanceUpdate(t *testing.T) {
	s := newStudentStore(t)
	require.NoError(t, s.Create(newStudent("A1", "alice")))

	balance := 42.0
	require.NoError(t, s.Update("A1", StudentUpdate{Balance: &balance}))

	student, err := s.Get("A1")
	require.NoError(t, err)
	assert.Equal(t, 42.0, student.Balance)
}

func TestStudentStoreUniquenessAfterCreateDelete(t *testing.T) {
	s := newStudentStore(t)
	require.NoError(t, s.Create(newStudent("A1", "alice")))
	require.NoError(t, s.Create(newStudent("A2", "bob")))
	require.NoError(t, s.Delete("A1"))
	require.NoError(t, s.Create(newStudent("A3", "carol")))

	assert.ErrorIs(t, s.Create(newStudent("A2", "other")), apperrors.ErrDuplicateKey)

	seen := map[string]bool{}
	for _, student := range s.List() {
		assert.False(t, seen[student.ID], "duplicate key %s", student.ID)
		seen[student.ID] = true
	}
}

func TestStudentStoreNextIDSurvivesDeletion(t *testing.T) {
	s := newStudentStore(t)
	require.NoError(t, s.Create(newStudent("A1", "alice")))
	require.NoError(t, s.Create(newStudent("A2", "bob")))
	require.NoError(t, s.Delete("A2"))

	// size-based numbering would mint A2 again here
	assert.Equal(t, "A3", s.NextID())
}

func TestStudentStoreNextIDIgnoresManualIDs(t *testing.T) {
	s := newStudentStore(t)
	require.NoError(t, s.Create(newStudent("STAFF7", "eve")))
	assert.Equal(t, "A1", s.NextID())
}

func TestStudentStoreSkipsMalformedLines(t *testing.T) {
	content := "A1:alice:pw1:100.0|12 Main St|555-1111\n" +
		"broken line\n" +
		"A2:bob:pw2:oops|x|y\n" +
		"A3:carol:pw3:0.0|-|-\n"
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := NewStudentStore(path)
	require.NoError(t, s.Load())
	assert.Equal(t, 2, s.Len())
}

func TestStudentStoreIdempotentLoad(t *testing.T) {
	s := newStudentStore(t)
	require.NoError(t, s.Create(newStudent("A1", "alice")))
	require.NoError(t, s.Create(newStudent("A2", "bob")))
	require.NoError(t, s.persist())

	reloaded := NewStudentStore(s.path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, s.List(), reloaded.List())
}

func TestStudentStoreWriteFailureRollsBack(t *testing.T) {
	s := newStudentStore(t)
	require.NoError(t, s.Create(newStudent("A1", "alice")))

	breakBackingFile(t, s.path)

	username := "alice2"
	require.Error(t, s.Update("A1", StudentUpdate{Username: &username}))
	student, err := s.Get("A1")
	require.NoError(t, err)
	assert.Equal(t, "alice", student.Username)

	require.Error(t, s.Delete("A1"))
	assert.Equal(t, 1, s.Len())

	require.Error(t, s.Create(newStudent("A2", "bob")))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "A2", s.NextID())
}

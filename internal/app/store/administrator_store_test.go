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

func newAdministratorStore(t *testing.T) *AdministratorStore {
	t.Helper()
	s := NewAdministratorStore(filepath.Join(t.TempDir(), "admin.txt"))
	require.NoError(t, s.Load())
	return s
}

func TestAdministratorStoreLoadMissingFile(t *testing.T) {
	s := newAdministratorStore(t)
	assert.Zero(t, s.Len())
}

func TestAdministratorStoreCreateAndReload(t *testing.T) {
	s := newAdministratorStore(t)
	require.NoError(t, s.Create(&models.Administrator{Username: "admin", Password: "pw"}))

	reloaded := NewAdministratorStore(s.path)
	require.NoError(t, reloaded.Load())
	account, err := reloaded.Get("admin")
	require.NoError(t, err)
	assert.Equal(t, "pw", account.Password)
}

func TestAdministratorStoreCreateDuplicate(t *testing.T) {
	s := newAdministratorStore(t)
	require.NoError(t, s.Create(&models.Administrator{Username: "admin", Password: "pw"}))

	err := s.Create(&models.Administrator{Username: "admin", Password: "other"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
	assert.Equal(t, 1, s.Len())
}

func TestAdministratorStoreUpdate(t *testing.T) {
	s := newAdministratorStore(t)
	require.NoError(t, s.Create(&models.Administrator{Username: "admin", Password: "pw"}))
	require.NoError(t, s.Update("admin", "newpw"))

	reloaded := NewAdministratorStore(s.path)
	require.NoError(t, reloaded.Load())
	account, err := reloaded.Get("admin")
	require.NoError(t, err)
	assert.Equal(t, "newpw", account.Password)

	assert.ErrorIs(t, s.Update("ghost", "x"), apperrors.ErrNotFound)
}

func TestAdministratorStoreDelete(t *testing.T) {
	s := newAdministratorStore(t)
	require.NoError(t, s.Create(&models.Administrator{Username: "a", Password: "1"}))
	require.NoError(t, s.Create(&models.Administrator{Username: "b", Password: "2"}))

	require.NoError(t, s.Delete("a"))
	assert.ErrorIs(t, s.Delete("a"), apperrors.ErrNotFound)

	reloaded := NewAdministratorStore(s.path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 1, reloaded.Len())
	_, err := reloaded.Get("b")
	assert.NoError(t, err)
}

func TestAdministratorStoreSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.txt")
	require.NoError(t, os.WriteFile(path, []byte("good:pw\nbadline\nalso:ok\n"), 0o644))

	s := NewAdministratorStore(path)
	require.NoError(t, s.Load())
	assert.Equal(t, 2, s.Len())
}

func TestAdministratorStoreIdempotentLoad(t *testing.T) {
	s := newAdministratorStore(t)
	require.NoError(t, s.Create(&models.Administrator{Username: "a", Password: "1"}))
	require.NoError(t, s.Create(&models.Administrator{Username: "b", Password: "2"}))
	require.NoError(t, s.persist())

	reloaded := NewAdministratorStore(s.path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, s.List(), reloaded.List())
}

func TestAdministratorStoreWriteFailureRollsBack(t *testing.T) {
	s := newAdministratorStore(t)
	require.NoError(t, s.Create(&models.Administrator{Username: "admin", Password: "old"}))

	breakBackingFile(t, s.path)

	require.Error(t, s.Update("admin", "new"))
	account, err := s.Get("admin")
	require.NoError(t, err)
	assert.Equal(t, "old", account.Password)

	require.Error(t, s.Delete("admin"))
	assert.Equal(t, 1, s.Len())

	require.Error(t, s.Create(&models.Administrator{Username: "second", Password: "x"}))
	assert.Equal(t, 1, s.Len())
}

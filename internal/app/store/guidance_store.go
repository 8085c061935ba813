package store

import (
	"fmt"
	"sort"

	"github.com/uniaid/aidtrack/internal/app/codec"
	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
)

// GuidanceUpdate carries the fields an update may change. Nil fields keep
// their current value. A new username moves the record to a new key.
type GuidanceUpdate struct {
	Username   *string
	Password   *string
	Phone      *string
	Department *string
}

// GuidanceStore handles the guidance.txt account file, keyed by username.
type GuidanceStore struct {
	path     string
	accounts map[string]*models.Guidance
}

// NewGuidanceStore creates a store backed by the given file.
func NewGuidanceStore(path string) *GuidanceStore {
	return &GuidanceStore{
		path:     path,
		accounts: make(map[string]*models.Guidance),
	}
}

// Load reads the backing file into memory. A missing file yields an empty
// store; malformed lines are logged and skipped.
func (s *GuidanceStore) Load() error {
	lines, err := readLines(s.path)
	if err != nil {
		return err
	}

	s.accounts = make(map[string]*models.Guidance, len(lines))
	for _, line := range lines {
		account, err := codec.DecodeGuidance(line)
		if err != nil {
			logger.Warn().Err(err).Str("file", s.path).Str("line", line).Msg("Skipping malformed guidance record")
			continue
		}
		s.accounts[account.Username] = account
	}
	return nil
}

// Get retrieves a guidance account by username.
func (s *GuidanceStore) Get(username string) (*models.Guidance, error) {
	account, ok := s.accounts[username]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("guidance %q not found", username))
	}
	return account, nil
}

// List returns all guidance accounts ordered by username.
func (s *GuidanceStore) List() []*models.Guidance {
	accounts := make([]*models.Guidance, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Username < accounts[j].Username })
	return accounts
}

// Len returns the number of guidance accounts in the store.
func (s *GuidanceStore) Len() int {
	return len(s.accounts)
}

// Create inserts a new guidance account and appends its line to the backing file.
func (s *GuidanceStore) Create(account *models.Guidance) error {
	if _, exists := s.accounts[account.Username]; exists {
		return apperrors.NewDuplicateKeyError(fmt.Sprintf("guidance %q already exists", account.Username))
	}
	if err := appendLine(s.path, codec.EncodeGuidance(account)); err != nil {
		return err
	}
	s.accounts[account.Username] = account
	return nil
}

// Update applies the supplied fields and rewrites the backing file. When the
// username changes the record is re-keyed: the old entry is removed and the
// record reinserted under the new username, failing with a duplicate-key
// error if that username is already taken.
func (s *GuidanceStore) Update(username string, upd GuidanceUpdate) error {
	account, ok := s.accounts[username]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("guidance %q not found", username))
	}

	newKey := username
	if upd.Username != nil && *upd.Username != username {
		newKey = *upd.Username
		if _, exists := s.accounts[newKey]; exists {
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("guidance %q already exists", newKey))
		}
	}

	previous := *account
	if upd.Username != nil {
		account.Username = *upd.Username
	}
	if upd.Password != nil {
		account.Password = *upd.Password
	}
	if upd.Phone != nil {
		account.Phone = *upd.Phone
	}
	if upd.Department != nil {
		account.Department = *upd.Department
	}

	if newKey != username {
		delete(s.accounts, username)
		s.accounts[newKey] = account
	}

	if err := s.persist(); err != nil {
		*account = previous
		if newKey != username {
			delete(s.accounts, newKey)
			s.accounts[username] = account
		}
		return err
	}
	return nil
}

// Rename moves a record under a new username key without touching its other
// fields.
func (s *GuidanceStore) Rename(oldUsername, newUsername string) error {
	return s.Update(oldUsername, GuidanceUpdate{Username: &newUsername})
}

// Delete removes a guidance account and rewrites the backing file.
func (s *GuidanceStore) Delete(username string) error {
	account, ok := s.accounts[username]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("guidance %q not found", username))
	}
	delete(s.accounts, username)
	if err := s.persist(); err != nil {
		s.accounts[username] = account
		return err
	}
	return nil
}

func (s *GuidanceStore) persist() error {
	lines := make([]string, 0, len(s.accounts))
	for _, account := range s.List() {
		lines = append(lines, codec.EncodeGuidance(account))
	}
	return writeLines(s.path, lines)
}

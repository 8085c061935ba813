package store

import (
	"fmt"
	"sort"

	"github.com/uniaid/aidtrack/internal/app/codec"
	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/pkg/apperrors"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
)

// AdministratorStore handles the username:password credential files. The same
// type backs both admin.txt and headminister.txt; the two roles share a line
// format and differ only in which file a credential was found in.
type AdministratorStore struct {
	path     string
	accounts map[string]*models.Administrator
}

// NewAdministratorStore creates a store backed by the given file.
func NewAdministratorStore(path string) *AdministratorStore {
	return &AdministratorStore{
		path:     path,
		accounts: make(map[string]*models.Administrator),
	}
}

// Load reads the backing file into memory. A missing file yields an empty
// store; malformed lines are logged and skipped.
func (s *AdministratorStore) Load() error {
	lines, err := readLines(s.path)
	if err != nil {
		return err
	}

	s.accounts = make(map[string]*models.Administrator, len(lines))
	for _, line := range lines {
		account, err := codec.DecodeAdministrator(line)
		if err != nil {
			logger.Warn().Err(err).Str("file", s.path).Str("line", line).Msg("Skipping malformed administrator record")
			continue
		}
		s.accounts[account.Username] = account
	}
	return nil
}

// Get retrieves an account by username.
func (s *AdministratorStore) Get(username string) (*models.Administrator, error) {
	account, ok := s.accounts[username]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("administrator %q not found", username))
	}
	return account, nil
}

// List returns all accounts ordered by username.
func (s *AdministratorStore) List() []*models.Administrator {
	accounts := make([]*models.Administrator, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Username < accounts[j].Username })
	return accounts
}

// Len returns the number of accounts in the store.
func (s *AdministratorStore) Len() int {
	return len(s.accounts)
}

// Create inserts a new account and appends its line to the backing file.
func (s *AdministratorStore) Create(account *models.Administrator) error {
	if _, exists := s.accounts[account.Username]; exists {
		return apperrors.NewDuplicateKeyError(fmt.Sprintf("administrator %q already exists", account.Username))
	}
	if err := appendLine(s.path, codec.EncodeAdministrator(account)); err != nil {
		return err
	}
	s.accounts[account.Username] = account
	return nil
}

// Update replaces an account's password and rewrites the backing file.
func (s *AdministratorStore) Update(username, password string) error {
	account, ok := s.accounts[username]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("administrator %q not found", username))
	}
	previous := account.Password
	account.Password = password
	if err := s.persist(); err != nil {
		account.Password = previous
		return err
	}
	return nil
}

// Delete removes an account and rewrites the backing file.
func (s *AdministratorStore) Delete(username string) error {
	account, ok := s.accounts[username]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("administrator %q not found", username))
	}
	delete(s.accounts, username)
	if err := s.persist(); err != nil {
		s.accounts[username] = account
		return err
	}
	return nil
}

func (s *AdministratorStore) persist() error {
	lines := make([]string, 0, len(s.accounts))
	for _, account := range s.List() {
		lines = append(lines, codec.EncodeAdministrator(account))
	}
	return writeLines(s.path, lines)
}

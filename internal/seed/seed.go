// Package seed creates the default administrator and head-administrator
// credentials when their stores are empty, so a fresh deployment can be
// logged into at all.
package seed

import (
	"github.com/uniaid/aidtrack/internal/app/models"
	"github.com/uniaid/aidtrack/internal/app/store"
	"github.com/uniaid/aidtrack/internal/config"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
)

// EnsureDefaultAccounts inserts the configured default credentials into any
// empty administrator store. Stores that already hold accounts are left
// alone.
func EnsureDefaultAccounts(cfg *config.Config, admins, headAdmins *store.AdministratorStore) error {
	if !cfg.Seed.Enabled {
		return nil
	}

	if admins.Len() == 0 {
		account := &models.Administrator{
			Username: cfg.Seed.AdminUsername,
			Password: cfg.Seed.AdminPassword,
		}
		if err := admins.Create(account); err != nil {
			return err
		}
		logger.Info().Str("username", account.Username).Msg("Seeded default administrator")
	}

	if headAdmins.Len() == 0 {
		account := &models.Administrator{
			Username: cfg.Seed.HeadAdminUsername,
			Password: cfg.Seed.HeadAdminPassword,
		}
		if err := headAdmins.Create(account); err != nil {
			return err
		}
		logger.Info().Str("username", account.Username).Msg("Seeded default head administrator")
	}

	return nil
}

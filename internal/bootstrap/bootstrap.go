// Package bootstrap wires the stores and services together. The presentation
// layer receives an Application and calls through it; stores are constructed
// once at startup and shared by reference, never as package globals.
package bootstrap

import (
	"strings"

	"github.com/uniaid/aidtrack/internal/app/services"
	"github.com/uniaid/aidtrack/internal/app/store"
	"github.com/uniaid/aidtrack/internal/config"
	"github.com/uniaid/aidtrack/internal/pkg/filestorage"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
	"github.com/uniaid/aidtrack/internal/seed"
)

// Application holds all the application dependencies
type Application struct {
	Config *config.Config

	Admins     *store.AdministratorStore
	HeadAdmins *store.AdministratorStore
	Students   *store.StudentStore
	Guidance   *store.GuidanceStore
	Requests   *store.AidRequestStore

	Storage *filestorage.LocalStorage

	Auth     *services.AuthService
	Accounts *services.AccountService
	Aid      *services.AidService
	Reports  *services.ReportService
}

// Setup loads configuration, configures logging, loads every store from disk
// and builds the service graph.
func Setup(configPath string) (*Application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	app := &Application{
		Config:     cfg,
		Admins:     store.NewAdministratorStore(cfg.AdminFilePath()),
		HeadAdmins: store.NewAdministratorStore(cfg.HeadAdminFilePath()),
		Students:   store.NewStudentStore(cfg.StudentsFilePath()),
		Guidance:   store.NewGuidanceStore(cfg.GuidanceFilePath()),
		Requests:   store.NewAidRequestStore(cfg.AidRequestsFilePath()),
	}

	for _, loader := range []interface{ Load() error }{
		app.Admins, app.HeadAdmins, app.Students, app.Guidance, app.Requests,
	} {
		if err := loader.Load(); err != nil {
			return nil, err
		}
	}

	if err := seed.EnsureDefaultAccounts(cfg, app.Admins, app.HeadAdmins); err != nil {
		return nil, err
	}

	app.Storage, err = filestorage.NewLocalStorage(cfg.Storage.BaseDir, cfg.Storage.UploadsDir)
	if err != nil {
		return nil, err
	}

	app.Auth = services.NewAuthService(app.Admins, app.Students, app.Guidance, app.HeadAdmins)
	app.Accounts = services.NewAccountService(app.Students, app.Guidance)
	app.Aid = services.NewAidService(app.Requests, app.Guidance)
	app.Reports = services.NewReportService(app.Aid)

	log := logger.WithField("base_dir", cfg.Storage.BaseDir)
	log.Info().
		Int("students", app.Students.Len()).
		Int("guidance", app.Guidance.Len()).
		Int("aid_requests", app.Requests.Len()).
		Msg("Stores loaded")

	return app, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Storage struct {
		// BaseDir is the directory all persisted state lives under.
		BaseDir    string `yaml:"base_dir" env:"AIDTRACK_BASE_DIR"`
		UploadsDir string `yaml:"uploads_dir" env:"AIDTRACK_UPLOADS_DIR"`
	} `yaml:"storage"`

	Files struct {
		Admin       string `yaml:"admin" env:"AIDTRACK_ADMIN_FILE"`
		Students    string `yaml:"students" env:"AIDTRACK_STUDENTS_FILE"`
		Guidance    string `yaml:"guidance" env:"AIDTRACK_GUIDANCE_FILE"`
		HeadAdmin   string `yaml:"head_admin" env:"AIDTRACK_HEAD_ADMIN_FILE"`
		AidRequests string `yaml:"aid_requests" env:"AIDTRACK_AID_REQUESTS_FILE"`
	} `yaml:"files"`

	Seed struct {
		Enabled           bool   `yaml:"enabled" env:"AIDTRACK_SEED_ENABLED"`
		AdminUsername     string `yaml:"admin_username" env:"AIDTRACK_SEED_ADMIN_USERNAME"`
		AdminPassword     string `yaml:"admin_password" env:"AIDTRACK_SEED_ADMIN_PASSWORD"`
		HeadAdminUsername string `yaml:"head_admin_username" env:"AIDTRACK_SEED_HEAD_ADMIN_USERNAME"`
		HeadAdminPassword string `yaml:"head_admin_password" env:"AIDTRACK_SEED_HEAD_ADMIN_PASSWORD"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"AIDTRACK_LOG_LEVEL"`
		Format string `yaml:"format" env:"AIDTRACK_LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional; defaults plus env vars are enough to run.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Storage.BaseDir = "data"
	config.Storage.UploadsDir = "uploads"

	config.Files.Admin = "admin.txt"
	config.Files.Students = "users.txt"
	config.Files.Guidance = "guidance.txt"
	config.Files.HeadAdmin = "headminister.txt"
	config.Files.AidRequests = "aid_requests.txt"

	config.Seed.Enabled = true
	config.Seed.AdminUsername = "admin"
	config.Seed.AdminPassword = "admin"
	config.Seed.HeadAdminUsername = "headmin"
	config.Seed.HeadAdminPassword = "headmin"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Storage.BaseDir == "" {
		return fmt.Errorf("storage base directory is required")
	}
	if config.Storage.UploadsDir == "" {
		return fmt.Errorf("uploads directory is required")
	}
	for name, file := range map[string]string{
		"admin":        config.Files.Admin,
		"students":     config.Files.Students,
		"guidance":     config.Files.Guidance,
		"head_admin":   config.Files.HeadAdmin,
		"aid_requests": config.Files.AidRequests,
	} {
		if file == "" {
			return fmt.Errorf("%s file name is required", name)
		}
	}
	return nil
}

// AdminFilePath returns the administrator credential file location.
func (c *Config) AdminFilePath() string {
	return filepath.Join(c.Storage.BaseDir, c.Files.Admin)
}

// StudentsFilePath returns the student account file location.
func (c *Config) StudentsFilePath() string {
	return filepath.Join(c.Storage.BaseDir, c.Files.Students)
}

// GuidanceFilePath returns the guidance account file location.
func (c *Config) GuidanceFilePath() string {
	return filepath.Join(c.Storage.BaseDir, c.Files.Guidance)
}

// HeadAdminFilePath returns the head-administrator credential file location.
func (c *Config) HeadAdminFilePath() string {
	return filepath.Join(c.Storage.BaseDir, c.Files.HeadAdmin)
}

// AidRequestsFilePath returns the aid-request document location.
func (c *Config) AidRequestsFilePath() string {
	return filepath.Join(c.Storage.BaseDir, c.Files.AidRequests)
}

package config

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/TundexSki/coursework-backend/internal/shared/logger"

	"github.com/caarlos0/env/v6"
)

// Settings holds the process-wide paths and knobs of the export tool. It is
// loaded once at startup and passed explicitly to every component.
type Settings struct {
	// Filesystem layout. Relative directories resolve against ProjectRoot.
	ProjectRoot   string `env:"EXPORT_PROJECT_ROOT" envDefault:"."`
	BackendDir    string `env:"EXPORT_BACKEND_DIR" envDefault:"express-backend"`
	OutputDir     string `env:"EXPORT_OUTPUT_DIR" envDefault:"auto-exports"`
	EnvFileName   string `env:"EXPORT_ENV_FILE" envDefault:".env"`
	PostmanSource string `env:"EXPORT_POSTMAN_SOURCE" envDefault:"Test-API-Live.postman_collection.json"`
	PostmanName   string `env:"EXPORT_POSTMAN_NAME" envDefault:"AfterSchool-API"`

	// Query shell invocation
	ShellBinary string        `env:"EXPORT_SHELL_BINARY" envDefault:"mongosh"`
	Timeout     time.Duration `env:"EXPORT_TIMEOUT" envDefault:"30s"`

	// Run journal; empty RedisURL disables it
	RedisURL      string `env:"EXPORT_REDIS_URL"`
	JournalStream string `env:"EXPORT_JOURNAL_STREAM" envDefault:"coursework:exports"`

	Log logger.Config
}

// LoadSettings loads settings from environment variables and applies defaults.
func LoadSettings() (*Settings, error) {
	cfg := &Settings{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load export settings from environment: " + err.Error())
	}
	if err := env.Parse(&cfg.Log); err != nil {
		return nil, errors.New("failed to load logging settings from environment: " + err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultSettings returns Settings rooted at projectRoot with default values.
func DefaultSettings(projectRoot string) *Settings {
	return &Settings{
		ProjectRoot:   projectRoot,
		BackendDir:    "express-backend",
		OutputDir:     "auto-exports",
		EnvFileName:   ".env",
		PostmanSource: "Test-API-Live.postman_collection.json",
		PostmanName:   "AfterSchool-API",
		ShellBinary:   "mongosh",
		Timeout:       30 * time.Second,
		JournalStream: "coursework:exports",
		Log:           logger.Config{Backend: logger.BackendLogrus, Level: "info", Format: "text"},
	}
}

// Validate checks the settings that have no usable zero value.
func (s *Settings) Validate() error {
	if s.ShellBinary == "" {
		return errors.New("EXPORT_SHELL_BINARY must not be empty")
	}
	if s.Timeout <= 0 {
		return errors.New("EXPORT_TIMEOUT must be positive")
	}
	if s.PostmanName == "" {
		return errors.New("EXPORT_POSTMAN_NAME must not be empty")
	}
	return nil
}

// BackendPath is the directory holding the backend .env and source artifacts.
func (s *Settings) BackendPath() string {
	return s.resolve(s.BackendDir)
}

// OutputPath is the directory receiving every artifact.
func (s *Settings) OutputPath() string {
	return s.resolve(s.OutputDir)
}

// EnvFilePath is the backend key=value configuration file.
func (s *Settings) EnvFilePath() string {
	return filepath.Join(s.BackendPath(), s.EnvFileName)
}

// PostmanSourcePath is the request-collection document read by the rewriter.
func (s *Settings) PostmanSourcePath() string {
	return filepath.Join(s.BackendPath(), s.PostmanSource)
}

func (s *Settings) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	root := s.ProjectRoot
	if root == "" {
		root = "."
	}
	return filepath.Join(root, dir)
}

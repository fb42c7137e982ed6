package config

import (
	"bufio"
	"io"
	"os"
	"strings"

	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"

	"github.com/caarlos0/env/v6"
)

const (
	commentMarker = "#"
	separator     = "="

	// KeyMongoDBURI is the only required backend setting
	KeyMongoDBURI = "MONGODB_URI"

	// Defaults for the optional backend settings
	DefaultDBName     = "courseworkDB"
	DefaultBackendURL = "https://aneskibackend.onrender.com"
)

// BackendConfig is the typed view of the backend .env file
type BackendConfig struct {
	MongoDBURI string `env:"MONGODB_URI,required"`
	DBName     string `env:"DB_NAME" envDefault:"courseworkDB"`
	BackendURL string `env:"BACKEND_URL" envDefault:"https://aneskibackend.onrender.com"`
}

// LoadBackendConfig reads the key=value file at path and binds it to a
// BackendConfig. Only the file's own entries are consulted, never the process
// environment.
func LoadBackendConfig(path string) (*BackendConfig, error) {
	values, err := ReadKeyValueFile(path)
	if err != nil {
		return nil, err
	}
	return BindBackendConfig(values)
}

// BindBackendConfig applies defaults and the required-key check to a loaded mapping.
func BindBackendConfig(values map[string]string) (*BackendConfig, error) {
	cfg := &BackendConfig{}
	if err := env.Parse(cfg, env.Options{Environment: values}); err != nil {
		return nil, apperrors.NewMissingRequiredSettingError(KeyMongoDBURI).WithCause(err).WithComponent("config")
	}
	// required only checks presence; an empty value is just as unusable
	if cfg.MongoDBURI == "" {
		return nil, apperrors.NewMissingRequiredSettingError(KeyMongoDBURI).WithComponent("config")
	}
	return cfg, nil
}

// ReadKeyValueFile loads a key=value file into a mapping. A missing file is a
// MissingConfigFile error.
func ReadKeyValueFile(path string) (map[string]string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, apperrors.NewMissingConfigFileError(path).WithComponent("config")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewMissingConfigFileError(path).WithCause(err).WithComponent("config")
	}
	defer f.Close()

	values, err := ParseKeyValues(f)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read " + path).WithCause(err).WithComponent("config")
	}
	return values, nil
}

// ParseKeyValues parses key=value lines. Blank lines and lines starting with
// '#' are ignored, lines without '=' are skipped, keys and values are trimmed
// and the last occurrence of a key wins.
func ParseKeyValues(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		key, value, found := strings.Cut(line, separator)
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

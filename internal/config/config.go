package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Env type for environment
type Env string

const (
	// Dev is the development environment
	Dev Env = "dev"
	// Prod is the production environment
	Prod Env = "prod"
)

// Config is the configuration for the application
type Config struct {
	Env     Env           `yaml:"env" env:"ENV" env-default:"dev"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig is the configuration for the storage facade
type StorageConfig struct {
	Kind            string `yaml:"kind" env:"STORAGE_KIND" env-default:"Local"`
	// DisableEncoding stores raw JSON instead of percent-encoded JSON
	DisableEncoding bool   `yaml:"disable_encoding" env:"STORAGE_DISABLE_ENCODING"`
	EncryptKey      string `yaml:"encrypt_key" env:"STORAGE_ENCRYPT_KEY"`
	Delimiter       string `yaml:"delimiter" env:"STORAGE_DELIMITER" env-default:"."`
	LocalPath       string `yaml:"local_path" env:"STORAGE_LOCAL_PATH" env-default:"./data/webstore.db"`
	// Cookie is a Cookie request header used to seed the cookie document
	Cookie          string `yaml:"cookie" env:"STORAGE_COOKIE"`
}

// LoggingConfig is the configuration for the logging
type LoggingConfig struct {
	Level      string        `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Output     string        `yaml:"output" env:"LOG_OUTPUT" env-default:"stderr"`
	MaxSize    string        `yaml:"max_size" env:"LOG_MAX_SIZE" env-default:"10MB"`
	MaxSizeMB  int           `yaml:"-"` // calculated field
	MaxBackups int           `yaml:"max_backups" env:"LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     time.Duration `yaml:"max_age" env:"LOG_MAX_AGE" env-default:"168h"`
	Compress   bool          `yaml:"compress" env:"LOG_COMPRESS" env-default:"false"`
}

// NewConfig creates a new instance of Config. With an empty path only
// environment variables and defaults are used.
func NewConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		// Load configuration from yaml file
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Load environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env variables: %w", err)
	}

	// Calculate MaxSizeMB
	size, err := parseSize(cfg.Logging.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("invalid logging max_size: %w", err)
	}
	cfg.Logging.MaxSizeMB = int((size + (1<<20 - 1)) >> 20)

	return cfg, nil
}

// Package config provides tradexdb runtime configuration.
//
// Configuration is resolved once at process start and passed down by
// reference, so the store and backup logic never read the environment
// themselves. Resolution order: built-in defaults, then the optional
// config file (~/.tradex/config.yaml), then environment variables.
//
// The encryption key is environment-only. It is a secret and must never
// live in a file next to the database it protects.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var (
	// ErrKeyRequired is returned when encryption-at-rest is enabled but no
	// key is present. Checked before any database access.
	ErrKeyRequired = errors.New("encryption enabled but TRADEX_DB_KEY is not set")
	// ErrInvalidValue is returned when a config value is out of bounds.
	ErrInvalidValue = errors.New("invalid config value")
)

// EnvProduction is the TRADEX_ENV value that disables demo seeding.
const EnvProduction = "production"

// DefaultAuditRetentionDays is the audit log retention window applied when
// AUDIT_LOG_RETENTION_DAYS is not configured.
const DefaultAuditRetentionDays = 30

// Config holds all runtime configuration for tradexdb.
type Config struct {
	// DBPath is the location of the live database file.
	DBPath string `env:"TRADEX_DB_PATH" yaml:"db_path"`
	// Environment gates demo seeding ("production" disables it).
	Environment string `env:"TRADEX_ENV" yaml:"environment"`
	// UseSQLCipher selects the encrypted storage backend.
	UseSQLCipher bool `env:"TRADEX_USE_SQLCIPHER" yaml:"use_sqlcipher"`
	// DBKey is the encryption key. Environment-only, never persisted.
	DBKey string `env:"TRADEX_DB_KEY" yaml:"-"`
	// AuditRetentionDays bounds how long audit log rows are kept.
	AuditRetentionDays int `env:"AUDIT_LOG_RETENTION_DAYS" yaml:"audit_retention_days"`
}

// Path returns the config file location: ~/.tradex/config.yaml.
// Empty string when the home directory cannot be determined.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tradex", "config.yaml")
}

// DefaultDBPath returns ~/.tradex/users.db, falling back to a relative
// path when the home directory cannot be determined.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tradex", "users.db")
	}
	return filepath.Join(home, ".tradex", "users.db")
}

// Load resolves configuration from the config file and environment.
// The returned Config has all defaults applied and has been validated.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile resolves configuration using an explicit config file path.
// A missing file is not an error; environment variables still apply.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// no file, defaults + env only
		case err != nil:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("malformed config file %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath()
	}
	if c.AuditRetentionDays == 0 {
		c.AuditRetentionDays = DefaultAuditRetentionDays
	}
}

// Validate checks the resolved configuration. The key check runs here,
// before any connection is opened, so a misconfigured encrypted deployment
// fails fast instead of writing plaintext.
func (c *Config) Validate() error {
	if c.UseSQLCipher && c.DBKey == "" {
		return ErrKeyRequired
	}
	if c.AuditRetentionDays < 0 {
		return fmt.Errorf("%w: audit retention days must be positive, got %d",
			ErrInvalidValue, c.AuditRetentionDays)
	}
	return nil
}

// Production reports whether demo seeding is disabled.
func (c *Config) Production() bool {
	return c.Environment == EnvProduction
}

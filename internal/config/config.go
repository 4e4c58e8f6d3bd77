// ABOUTME: Configuration loading and parsing for newsdesk
// ABOUTME: Supports YAML or TOML files with environment variable expansion and duration parsing

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultFreshnessWindow is the cache freshness window when none is configured.
const DefaultFreshnessWindow = 10 * time.Minute

// Config represents the complete newsdesk configuration
type Config struct {
	Database DatabaseConfig `yaml:"database" toml:"database"`
	Cache    CacheConfig    `yaml:"cache" toml:"cache"`
	Auth     AuthConfig     `yaml:"auth" toml:"auth"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// CacheConfig holds news cache timing
type CacheConfig struct {
	FreshnessWindow time.Duration `yaml:"-" toml:"-"`

	// Raw string value for unmarshaling
	FreshnessWindowRaw string `yaml:"freshness_window" toml:"freshness_window"`
}

// AuthConfig selects the password hasher used for new accounts
type AuthConfig struct {
	Hasher     string `yaml:"hasher" toml:"hasher"`           // "sha256" (default) or "bcrypt"
	BcryptCost int    `yaml:"bcrypt_cost" toml:"bcrypt_cost"` // 0 means library default
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: DefaultDatabasePath()},
		Cache: CacheConfig{
			FreshnessWindow:    DefaultFreshnessWindow,
			FreshnessWindowRaw: DefaultFreshnessWindow.String(),
		},
		Auth:    AuthConfig{Hasher: "sha256"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Files ending in .toml are decoded as TOML, everything else as YAML.
// Environment variables in the format ${VAR_NAME} are expanded.
// Unset fields take their values from Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(expandedData, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	// Parse duration fields
	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Database.Path == "" {
		cfg.Database.Path = d.Database.Path
	}
	if cfg.Cache.FreshnessWindowRaw == "" {
		cfg.Cache.FreshnessWindowRaw = d.Cache.FreshnessWindowRaw
	}
	if cfg.Auth.Hasher == "" {
		cfg.Auth.Hasher = d.Auth.Hasher
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = d.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = d.Logging.Format
	}
}

// Validate checks that all configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Cache.FreshnessWindow <= 0 {
		return fmt.Errorf("cache.freshness_window must be positive, got %v", c.Cache.FreshnessWindow)
	}

	switch c.Auth.Hasher {
	case "sha256", "bcrypt":
	default:
		return fmt.Errorf("auth.hasher %q is invalid (valid: sha256, bcrypt)", c.Auth.Hasher)
	}

	if c.Auth.BcryptCost < 0 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost %d is out of range (0-31)", c.Auth.BcryptCost)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q is invalid (valid: text, json)", c.Logging.Format)
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Cache.FreshnessWindowRaw != "" {
		cfg.Cache.FreshnessWindow, err = time.ParseDuration(cfg.Cache.FreshnessWindowRaw)
		if err != nil {
			return fmt.Errorf("parsing freshness_window %q: %w", cfg.Cache.FreshnessWindowRaw, err)
		}
	}

	return nil
}

// DefaultPath returns the path to the config file.
// Priority: NEWSDESK_CONFIG env var > XDG_CONFIG_HOME/newsdesk/config.yaml > ~/.config/newsdesk/config.yaml
func DefaultPath() string {
	if envPath := os.Getenv("NEWSDESK_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "newsdesk", "config.yaml")
}

// DefaultDatabasePath returns the default database location.
// Priority: XDG_DATA_HOME/newsdesk > ~/.local/share/newsdesk
func DefaultDatabasePath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "newsdesk.db" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "newsdesk", "newsdesk.db")
}

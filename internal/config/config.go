package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/viper"
)

// ConfigFile is the name of the project configuration file.
const ConfigFile = "smallville.config.json"

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	// BatchSize is the number of pending rows that triggers a bulk flush.
	BatchSize int `json:"batch_size" mapstructure:"batch_size"`
	// ClosestCities is how many nearby cities a commuter searches for work.
	ClosestCities int `json:"closest_cities" mapstructure:"closest_cities"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Database: Database{
			Provider: "postgresql",
			URLEnv:   "DATABASE_URL",
		},
		Seed: Seed{
			BatchSize:     2000,
			ClosestCities: 15,
		},
	}
}

// Load reads the configuration from viper (config file plus environment)
// and fills in defaults for anything left unset.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Seed.BatchSize <= 0 {
		cfg.Seed.BatchSize = 2000
	}
	if cfg.Seed.ClosestCities <= 0 {
		cfg.Seed.ClosestCities = 15
	}

	return cfg, nil
}

// Validate checks that the configured provider is supported.
func (c *Config) Validate() error {
	switch c.Database.Provider {
	case "postgresql", "postgres", "mysql", "sqlite", "sqlite3":
		return nil
	}
	return fmt.Errorf(
		"unsupported database provider: %s (supported: postgresql, mysql, sqlite)",
		c.Database.Provider)
}

// DatabaseURL returns the connection URL from the configured environment
// variable. For PostgreSQL an unset variable falls back to a local
// "smallville" database owned by the current OS user.
func (c *Config) DatabaseURL() (string, error) {
	if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
		return dbURL, nil
	}
	if c.Database.Provider == "postgresql" || c.Database.Provider == "postgres" {
		current, err := user.Current()
		if err != nil {
			return "", fmt.Errorf("failed to determine current user: %w", err)
		}
		return fmt.Sprintf(
			"postgres://%s@localhost:5432/smallville?sslmode=disable",
			current.Username), nil
	}
	return "", fmt.Errorf(
		"database URL not found in environment variable %s", c.Database.URLEnv)
}

// IsInitialized reports whether a project config file exists in the
// working directory.
func IsInitialized() bool {
	_, err := os.Stat(ConfigFile)
	return err == nil
}

// InitializeProject writes a default config file and a sample .env, and
// fails if the project has already been initialized.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("project already initialized: %s exists", ConfigFile)
	}

	contents, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(ConfigFile, append(contents, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		sample := "# Connection URL for the smallville database\n" +
			"# DATABASE_URL=postgres://user@localhost:5432/smallville?sslmode=disable\n"
		if err := os.WriteFile(".env", []byte(sample), 0644); err != nil {
			return fmt.Errorf("failed to write .env sample: %w", err)
		}
	}

	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const ConfigFile = "shopsynth.config.json"

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	DataDir  string   `json:"data_dir" mapstructure:"data_dir"`
	Seed     int64    `json:"seed" mapstructure:"seed"`
	Counts   Counts   `json:"counts" mapstructure:"counts"`
	Database Database `json:"database" mapstructure:"database"`
}

type Counts struct {
	Customers int `json:"customers" mapstructure:"customers"`
	Products  int `json:"products" mapstructure:"products"`
	Orders    int `json:"orders" mapstructure:"orders"`
	Reviews   int `json:"reviews" mapstructure:"reviews"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URL      string `json:"url" mapstructure:"url"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		DataDir: "data",
		Seed:    42,
		Counts: Counts{
			Customers: 120,
			Products:  60,
			Orders:    240,
			Reviews:   150,
		},
		Database: Database{
			Provider: "sqlite",
			URL:      "sqlite://ecommerce.db",
			URLEnv:   "DATABASE_URL",
		},
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Fill anything the config file leaves out.
	def := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.Counts.Customers == 0 {
		cfg.Counts.Customers = def.Counts.Customers
	}
	if cfg.Counts.Products == 0 {
		cfg.Counts.Products = def.Counts.Products
	}
	if cfg.Counts.Orders == 0 {
		cfg.Counts.Orders = def.Counts.Orders
	}
	if cfg.Counts.Reviews == 0 {
		cfg.Counts.Reviews = def.Counts.Reviews
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = def.Database.Provider
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = def.Database.URL
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = def.Database.URLEnv
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"sqlite", "sqlite3", "postgresql", "postgres", "mysql"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}

	return nil
}

// GetDatabaseURL prefers the environment variable and falls back to the
// configured URL, so local runs work without any environment setup.
func (c *Config) GetDatabaseURL() (string, error) {
	if url := os.Getenv(c.Database.URLEnv); url != "" {
		return url, nil
	}
	if c.Database.URL != "" {
		return c.Database.URL, nil
	}
	return "", fmt.Errorf("database URL not found in environment variable %s and no url configured", c.Database.URLEnv)
}

// InitializeProject writes a default config file and creates the data
// directory. It refuses to overwrite an existing config.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("project already initialized: %s exists", ConfigFile)
	}

	cfg := DefaultConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(ConfigFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFile, err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", cfg.DataDir, err)
	}

	return nil
}

func IsInitialized() bool {
	_, err := os.Stat(ConfigFile)
	return err == nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Inventory InventoryConfig
	Filter    FilterConfig
	Recipe    RecipeConfig
	Scan      ScanConfig
	History   HistoryConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// InventoryConfig holds stash API configuration
type InventoryConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	AccountName string        `mapstructure:"account_name"`
	League      string        `mapstructure:"league"`
	SessionID   string        `mapstructure:"session_id"`
	RequestRate float64       `mapstructure:"request_rate"` // requests per second
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// FilterConfig points at the desired-modifier document
type FilterConfig struct {
	Path string `mapstructure:"path"`
}

// RecipeConfig holds recipe set defaults
type RecipeConfig struct {
	AllowIdentified bool `mapstructure:"allow_identified"`
	FillGreedy      bool `mapstructure:"fill_greedy"`
	MaxSets         int  `mapstructure:"max_sets"`
}

// ScanConfig holds rare scan defaults
type ScanConfig struct {
	MinMatches int `mapstructure:"min_matches"`
}

// HistoryConfig holds scan history persistence configuration
type HistoryConfig struct {
	Type           string `mapstructure:"type"` // "none" or "postgres"
	DSN            string `mapstructure:"dsn"`
	MaxConnections int    `mapstructure:"max_connections"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/poetis/")

	// POETIS_INVENTORY_SESSION_ID -> inventory.session_id
	v.SetEnvPrefix("POETIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env into the process environment without overriding set variables
func loadEnvFile() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Inventory defaults
	v.SetDefault("inventory.base_url", "https://www.pathofexile.com")
	v.SetDefault("inventory.account_name", "")
	v.SetDefault("inventory.league", "Standard")
	v.SetDefault("inventory.session_id", "")
	v.SetDefault("inventory.request_rate", 0.5)
	v.SetDefault("inventory.cache_ttl", "30s")

	// Filter defaults
	v.SetDefault("filter.path", "filters/mods.yaml")

	// Recipe defaults
	v.SetDefault("recipe.allow_identified", false)
	v.SetDefault("recipe.fill_greedy", true)
	v.SetDefault("recipe.max_sets", 4)

	// Scan defaults
	v.SetDefault("scan.min_matches", 1)

	// History defaults
	v.SetDefault("history.type", "none")
	v.SetDefault("history.dsn", "")
	v.SetDefault("history.max_connections", 10)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Inventory.SessionID == "" {
		return fmt.Errorf("session id is required (set POETIS_INVENTORY_SESSION_ID)")
	}

	if config.Inventory.AccountName == "" {
		return fmt.Errorf("account name is required (set POETIS_INVENTORY_ACCOUNT_NAME)")
	}

	if config.Inventory.RequestRate <= 0 {
		return fmt.Errorf("inventory request rate must be positive, got: %v", config.Inventory.RequestRate)
	}

	if config.Recipe.MaxSets < 1 {
		return fmt.Errorf("recipe max sets must be at least 1, got: %d", config.Recipe.MaxSets)
	}

	if config.Scan.MinMatches < 0 {
		return fmt.Errorf("scan min matches must not be negative, got: %d", config.Scan.MinMatches)
	}

	if config.History.Type != "none" && config.History.Type != "postgres" {
		return fmt.Errorf("history type must be 'none' or 'postgres', got: %s", config.History.Type)
	}

	if config.History.Type == "postgres" && config.History.DSN == "" {
		return fmt.Errorf("history DSN is required when history type is 'postgres'")
	}

	if config.Logging.Format != "json" && config.Logging.Format != "console" {
		return fmt.Errorf("logging format must be 'json' or 'console', got: %s", config.Logging.Format)
	}

	return nil
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Remote    RemoteConfig    `mapstructure:"remote"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Favorites FavoritesConfig `mapstructure:"favorites"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RemoteConfig holds the supplemental product API configuration
type RemoteConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Limit   int           `mapstructure:"limit"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CatalogConfig holds the seed/supplement merge policy
type CatalogConfig struct {
	SeedThreshold   int    `mapstructure:"seed_threshold"`
	MaxItems        int    `mapstructure:"max_items"`
	PlaceholderBase string `mapstructure:"placeholder_base"`
}

// FavoritesConfig holds favorites persistence configuration
type FavoritesConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite" or "memory"
	Path   string `mapstructure:"path"`
	Key    string `mapstructure:"key"`
}

// RateLimitConfig holds HTTP rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from environment variables and the default
// config file locations
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from an explicit config file when path is
// set, otherwise from the default locations
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("chemaware")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".chemaware"))
		}
	}

	// Environment variable settings
	v.SetEnvPrefix("CHEMAWARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	expanded, err := homedir.Expand(config.Favorites.Path)
	if err != nil {
		return nil, fmt.Errorf("expanding favorites path: %w", err)
	}
	config.Favorites.Path = expanded

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Remote product API defaults
	v.SetDefault("remote.enabled", true)
	v.SetDefault("remote.base_url", "https://dummyjson.com/products")
	v.SetDefault("remote.limit", 30)
	v.SetDefault("remote.timeout", "30s")

	// Catalog defaults
	v.SetDefault("catalog.seed_threshold", 30)
	v.SetDefault("catalog.max_items", 32)
	v.SetDefault("catalog.placeholder_base", "https://picsum.photos/seed")

	// Favorites defaults
	v.SetDefault("favorites.driver", "sqlite")
	v.SetDefault("favorites.path", "~/.chemaware/favorites.db")
	v.SetDefault("favorites.key", "chem_favs")

	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Remote.Enabled && config.Remote.BaseURL == "" {
		return fmt.Errorf("remote base URL is required when the remote source is enabled (set CHEMAWARE_REMOTE_BASE_URL)")
	}

	if config.Favorites.Driver != "memory" && config.Favorites.Driver != "sqlite" {
		return fmt.Errorf("favorites driver must be 'memory' or 'sqlite', got: %s", config.Favorites.Driver)
	}

	if config.Favorites.Driver == "sqlite" && config.Favorites.Path == "" {
		return fmt.Errorf("favorites path is required when favorites driver is 'sqlite'")
	}

	if config.Favorites.Key == "" {
		return fmt.Errorf("favorites key must not be empty")
	}

	if config.Catalog.MaxItems < 1 || config.Catalog.SeedThreshold < 1 {
		return fmt.Errorf("catalog.seed_threshold and catalog.max_items must be at least 1, got %d and %d",
			config.Catalog.SeedThreshold, config.Catalog.MaxItems)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("ratelimit.per_ip must not be negative, got: %d", config.RateLimit.PerIP)
	}

	return nil
}

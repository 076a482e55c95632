// Package config provides configuration management for the gosign
// application. It handles loading, validation, and access to configuration
// values from YAML files and environment variables via Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonesrussell/gosign/internal/config/app"
	"github.com/jonesrussell/gosign/internal/config/cachecfg"
	"github.com/jonesrussell/gosign/internal/config/logging"
	"github.com/jonesrussell/gosign/internal/config/scrape"
	"github.com/jonesrussell/gosign/internal/config/server"
)

// Interface defines the interface for configuration management.
type Interface interface {
	// GetAppConfig returns the application configuration.
	GetAppConfig() *app.Config
	// GetLoggingConfig returns the logging configuration.
	GetLoggingConfig() *logging.Config
	// GetServerConfig returns the server configuration.
	GetServerConfig() *server.Config
	// GetScrapeConfig returns the scraping configuration.
	GetScrapeConfig() *scrape.Config
	// GetCacheConfig returns the cache configuration.
	GetCacheConfig() *cachecfg.Config
	// Validate validates the configuration.
	Validate() error
}

// Ensure Config implements Interface
var _ Interface = (*Config)(nil)

// Config represents the application configuration.
type Config struct {
	// App holds application-specific configuration
	App *app.Config `yaml:"app"`
	// Logging holds logging configuration
	Logging *logging.Config `yaml:"logging"`
	// Server holds server-specific configuration
	Server *server.Config `yaml:"server"`
	// Scrape holds source-site scraping configuration
	Scrape *scrape.Config `yaml:"scrape"`
	// Cache holds video cache configuration
	Cache *cachecfg.Config `yaml:"cache"`
}

// Load builds the configuration from Viper's current state. InitializeViper
// must have been called first.
func Load() (*Config, error) {
	cfg := &Config{
		App:     app.NewConfig(),
		Logging: logging.NewConfig(),
		Server:  server.NewConfig(),
		Scrape:  scrape.NewConfig(),
		Cache:   cachecfg.NewConfig(),
	}

	cfg.App.Name = viper.GetString("app.name")
	cfg.App.Version = viper.GetString("app.version")
	cfg.App.Environment = viper.GetString("app.environment")
	cfg.App.Debug = viper.GetBool("app.debug")

	cfg.Logging.Level = viper.GetString("logging.level")
	cfg.Logging.Encoding = viper.GetString("logging.encoding")
	cfg.Logging.Development = viper.GetBool("logging.development")

	cfg.Server.Address = viper.GetString("server.address")
	cfg.Server.ReadTimeout = viper.GetDuration("server.read_timeout")
	cfg.Server.WriteTimeout = viper.GetDuration("server.write_timeout")
	cfg.Server.IdleTimeout = viper.GetDuration("server.idle_timeout")
	cfg.Server.SecurityEnabled = viper.GetBool("server.security_enabled")
	cfg.Server.APIKey = viper.GetString("server.api_key")

	cfg.Scrape.BaseURL = viper.GetString("scrape.base_url")
	cfg.Scrape.UserAgent = viper.GetString("scrape.user_agent")
	cfg.Scrape.RateLimit = viper.GetDuration("scrape.rate_limit")
	cfg.Scrape.RequestTimeout = viper.GetDuration("scrape.request_timeout")

	cfg.Cache.Dir = viper.GetString("cache.dir")
	cfg.Cache.DownloadTimeout = viper.GetDuration("cache.download_timeout")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidationFailed, err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Scrape.Validate(); err != nil {
		return fmt.Errorf("scrape: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	return nil
}

// GetAppConfig returns the application configuration.
func (c *Config) GetAppConfig() *app.Config {
	return c.App
}

// GetLoggingConfig returns the logging configuration.
func (c *Config) GetLoggingConfig() *logging.Config {
	return c.Logging
}

// GetServerConfig returns the server configuration.
func (c *Config) GetServerConfig() *server.Config {
	return c.Server
}

// GetScrapeConfig returns the scraping configuration.
func (c *Config) GetScrapeConfig() *scrape.Config {
	return c.Scrape
}

// GetCacheConfig returns the cache configuration.
func (c *Config) GetCacheConfig() *cachecfg.Config {
	return c.Cache
}

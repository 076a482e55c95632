// Package cachecfg provides video cache configuration types.
package cachecfg

import (
	"errors"
	"time"
)

// Config represents cache-specific configuration settings.
type Config struct {
	// Dir is the directory that holds downloaded videos
	Dir string `yaml:"dir"`
	// DownloadTimeout bounds a single video transfer
	DownloadTimeout time.Duration `yaml:"download_timeout"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return errors.New("cache directory must be specified")
	}
	if c.DownloadTimeout <= 0 {
		return errors.New("cache download timeout must be positive")
	}
	return nil
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		Dir:             "cache",
		DownloadTimeout: 30 * time.Second,
	}
}

// Package scrape provides source-site scraping configuration types.
package scrape

import (
	"errors"
	"strings"
	"time"
)

// Config represents scraping-specific configuration settings.
type Config struct {
	// BaseURL is the per-word page URL template with one %s verb
	BaseURL string `yaml:"base_url"`
	// UserAgent is the User-Agent header sent with page requests
	UserAgent string `yaml:"user_agent"`
	// RateLimit is the minimum delay between page requests
	RateLimit time.Duration `yaml:"rate_limit"`
	// RequestTimeout bounds a single page retrieval
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("scrape base URL must be specified")
	}
	if strings.Count(c.BaseURL, "%s") != 1 {
		return errors.New("scrape base URL must contain exactly one %s verb")
	}
	if c.RateLimit < 0 {
		return errors.New("scrape rate limit cannot be negative")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("scrape request timeout must be positive")
	}
	return nil
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:        "https://www.signasl.org/sign/%s",
		RateLimit:      time.Second,
		RequestTimeout: 10 * time.Second,
	}
}

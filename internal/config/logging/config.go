// Package logging provides logging configuration types.
package logging

import "fmt"

// Config holds logging-specific configuration settings.
type Config struct {
	// Level is the logging level (debug, info, warn, error)
	Level string `yaml:"level"`
	// Encoding is the log encoding format (json, console)
	Encoding string `yaml:"encoding"`
	// Development enables verbose development-mode formatting
	Development bool `yaml:"development"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level: %s", c.Level)
	}

	switch c.Encoding {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log encoding: %s", c.Encoding)
	}

	return nil
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		Level:    "info",
		Encoding: "console",
	}
}

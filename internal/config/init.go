package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Scrape defaults matching the source site's tolerances.
const (
	defaultRateLimit       = time.Second
	defaultRequestTimeout  = 10 * time.Second
	defaultDownloadTimeout = 30 * time.Second
)

// InitializeViper initializes Viper configuration from environment variables
// and config files. This must be called before Load().
func InitializeViper(cfgFile string) error {
	loadEnvFile()
	setupViper(cfgFile)
	setDefaults()
	readConfigFile()
	return nil
}

// loadEnvFile loads .env file (ignores error if file doesn't exist).
func loadEnvFile() {
	_ = godotenv.Load()
}

// setupViper configures Viper for environment variable and config file reading.
func setupViper(cfgFile string) {
	viper.SetEnvPrefix("GOSIGN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
}

// readConfigFile reads config file (ignores error if file doesn't exist).
func readConfigFile() {
	_ = viper.ReadInConfig()
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "gosign",
		"version":     "1.0.0",
		"environment": "development",
		"debug":       false,
	})

	viper.SetDefault("logging", map[string]any{
		"level":       "info",
		"encoding":    "console",
		"development": false,
	})

	viper.SetDefault("server", map[string]any{
		"address":          ":8080",
		"read_timeout":     30 * time.Second,
		"write_timeout":    30 * time.Second,
		"idle_timeout":     60 * time.Second,
		"security_enabled": false,
	})

	viper.SetDefault("scrape", map[string]any{
		"base_url":        "https://www.signasl.org/sign/%s",
		"user_agent":      "",
		"rate_limit":      defaultRateLimit,
		"request_timeout": defaultRequestTimeout,
	})

	viper.SetDefault("cache", map[string]any{
		"dir":              "cache",
		"download_timeout": defaultDownloadTimeout,
	})
}

// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	BNM struct {
		BaseURL           string `mapstructure:"base_url" yaml:"base_url"`
		Currency          string `mapstructure:"currency" yaml:"currency"`
		TimeoutSeconds    int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		RequestsPerMinute int    `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
	} `mapstructure:"bnm" yaml:"bnm"`

	Enrich struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"enrich" yaml:"enrich"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then EXCHANGE_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.exchange-csv")
	v.AddConfigPath(".exchange-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EXCHANGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("bnm.base_url", "https://www.bnm.md/ro/export-official-exchange-rates")
	v.SetDefault("bnm.currency", "USD")
	v.SetDefault("bnm.timeout_seconds", 30)
	// 0 disables throttling
	v.SetDefault("bnm.requests_per_minute", 0)

	v.SetDefault("enrich.workers", 8)
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.BNM.BaseURL == "" {
		return fmt.Errorf("bnm.base_url must not be empty")
	}

	if len(config.BNM.Currency) != 3 {
		return fmt.Errorf("bnm.currency must be a 3-letter code, got: %s", config.BNM.Currency)
	}

	if config.BNM.TimeoutSeconds < 1 || config.BNM.TimeoutSeconds > 300 {
		return fmt.Errorf("bnm.timeout_seconds must be between 1 and 300, got: %d", config.BNM.TimeoutSeconds)
	}

	if config.BNM.RequestsPerMinute < 0 || config.BNM.RequestsPerMinute > 1000 {
		return fmt.Errorf("bnm.requests_per_minute must be between 0 and 1000, got: %d", config.BNM.RequestsPerMinute)
	}

	if config.Enrich.Workers < 1 || config.Enrich.Workers > 256 {
		return fmt.Errorf("enrich.workers must be between 1 and 256, got: %d", config.Enrich.Workers)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

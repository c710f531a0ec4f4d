package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "https://www.bnm.md/ro/export-official-exchange-rates", config.BNM.BaseURL)
	assert.Equal(t, "USD", config.BNM.Currency)
	assert.Equal(t, 30, config.BNM.TimeoutSeconds)
	assert.Equal(t, 0, config.BNM.RequestsPerMinute)
	assert.Equal(t, 8, config.Enrich.Workers)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("EXCHANGE_LOG_LEVEL", "debug")
	t.Setenv("EXCHANGE_LOG_FORMAT", "json")
	t.Setenv("EXCHANGE_BNM_CURRENCY", "EUR")
	t.Setenv("EXCHANGE_BNM_REQUESTS_PER_MINUTE", "60")
	t.Setenv("EXCHANGE_ENRICH_WORKERS", "16")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "EUR", config.BNM.Currency)
	assert.Equal(t, 60, config.BNM.RequestsPerMinute)
	assert.Equal(t, 16, config.Enrich.Workers)
}

func TestInitializeConfig_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid log level", "EXCHANGE_LOG_LEVEL", "verbose"},
		{"invalid log format", "EXCHANGE_LOG_FORMAT", "xml"},
		{"invalid currency", "EXCHANGE_BNM_CURRENCY", "DOLLARS"},
		{"timeout too large", "EXCHANGE_BNM_TIMEOUT_SECONDS", "999"},
		{"negative requests per minute", "EXCHANGE_BNM_REQUESTS_PER_MINUTE", "-1"},
		{"zero workers", "EXCHANGE_ENRICH_WORKERS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := &Config{}
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfig_BadLevelFallsBack(t *testing.T) {
	config := &Config{}
	config.Log.Level = "verbose"
	config.Log.Format = "text"

	logger := ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

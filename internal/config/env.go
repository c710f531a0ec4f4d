package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var once sync.Once

// envLog reports .env loading before the configured logger exists.
var envLog = logrus.New()

// LoadEnv loads environment variables from a .env file if one exists,
// checking the current directory and then the parent. It must run before
// InitializeConfig so viper sees the loaded variables.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				envLog.Debug("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			envLog.Warnf("Error loading .env file: %v", err)
			return
		}
		envLog.Debugf("Loaded environment variables from %s", envFile)
	})
}

package config

import (
	"os"
	"path/filepath"

	"fjacquet/charge-calc/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the first .env file found in the working
// directory or its parent. Variables already set in the environment win.
// It returns the file that was loaded, or an empty string.
func LoadEnv(logger logging.Logger) string {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			if logger != nil {
				logger.WithError(err).Warn("Error loading .env file", logging.F(logging.FieldFile, envFile))
			}
			return ""
		}
		if logger != nil {
			logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
		}
		return envFile
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

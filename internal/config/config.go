package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	MLModelURL   string // Endpoint of the external hearing-loss prediction service
	CORSOrigin   string
	AppEnv       string
}

// Load loads configuration from environment variables or sets defaults.
// A local .env file is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./hearing.db"),
		MLModelURL:   getEnv("ML_MODEL_URL", "http://localhost:8000/predict"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
		AppEnv:       getEnv("APP_ENV", "development"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Granite GraniteConfig
	Session SessionConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// GraniteConfig holds IBM Granite API configuration
type GraniteConfig struct {
	APIKey    string
	BaseURL   string
	ProjectID string
	Timeout   time.Duration
	MockMode  bool
}

// SessionConfig holds in-memory session store configuration
type SessionConfig struct {
	TTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Granite: GraniteConfig{
			APIKey:    getEnv("IBM_API_KEY", ""),
			BaseURL:   getEnv("IBM_URL", "https://us-south.ml.cloud.ibm.com"),
			ProjectID: getEnv("IBM_PROJECT_ID", ""),
			Timeout:   getEnvAsDuration("IBM_API_TIMEOUT", "120s"),
			MockMode:  getEnvAsBool("GRANITE_MOCK_MODE", true),
		},
		Session: SessionConfig{
			TTL: getEnvAsDuration("SESSION_TTL", "1h"),
		},
	}

	// Without credentials the Granite client can only run against mock data.
	if config.Granite.APIKey == "" {
		config.Granite.MockMode = true
	}

	return config, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

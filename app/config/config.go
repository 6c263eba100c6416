package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	ServiceName string
	Port        int

	// AdminUsername/AdminPassword, when both set, seed a bootstrap
	// user at startup. Optional.
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from environment variables, falling back
// to defaults. Nothing is required: the store is in-process, so the
// service starts with no external configuration at all.
func Load() *Config {
	return &Config{
		ServiceName:   getEnv("SERVICE_NAME", "ledgeriq-dashboard"),
		Port:          getEnvAsInt("PORT", 8080),
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

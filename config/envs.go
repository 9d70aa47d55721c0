package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	Port          int    // Port for the REST API and host page
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel      string // Minimum level for the application loggers
	MaxDimension  int    // Upper bound on grid width and height
	DefaultSeed   uint64 // Seed the host page starts with
	DefaultWidth  int    // Grid width the host page starts with
	DefaultHeight int    // Grid height the host page starts with
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file. Everything has a default
// so the simulator runs with zero configuration, like the dev server it
// replaces.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:        getEnvWithDefault("HOST_IP", "0.0.0.0"),
		Port:          getEnvAsIntWithDefault("PORT", 8000),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		MaxDimension:  getEnvAsIntWithDefault("MAX_DIMENSION", 512),
		DefaultSeed:   getEnvAsUintWithDefault("DEFAULT_SEED", 1),
		DefaultWidth:  getEnvAsIntWithDefault("DEFAULT_WIDTH", 48),
		DefaultHeight: getEnvAsIntWithDefault("DEFAULT_HEIGHT", 32),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer or
// logs a fatal error if it is set but cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsUintWithDefault retrieves an environment variable as an unsigned
// 64-bit integer or logs a fatal error if it is set but cannot be parsed.
func getEnvAsUintWithDefault(key string, defaultValue uint64) uint64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a non-negative integer: %v", key, err)
	}
	return value
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, config is loaded from environment
// variables; an optional .orderpad.yaml overlays the result.
type Config struct {
	API      APIConfig
	Server   ServerConfig
	LogLevel string
}

// APIConfig describes the remote order API the widget talks to.
type APIConfig struct {
	BaseURL      string
	ProductsPath string
	SavePath     string
	Timeout      int // seconds
}

// ServerConfig configures the local stand-in server (orderpad serve).
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	APIKeys         []string // when non-empty, the save endpoint requires an api_key header
}

// Load reads configuration from environment variables and overlays the
// optional config file from the working directory.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL:      getEnv("API_BASE_URL", "https://dev-su.eda1.ru/test_task"),
			ProductsPath: getEnv("API_PRODUCTS_PATH", "/products.php"),
			SavePath:     getEnv("API_SAVE_PATH", "/save.php"),
			Timeout:      getEnvAsInt("API_TIMEOUT", 15),
		},
		Server: ServerConfig{
			Host:            getEnv("HOST", "0.0.0.0"),
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
			APIKeys:         getEnvAsSlice("API_KEYS", nil),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := overlayFile(cfg, "."); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("API timeout must be positive")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

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

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}

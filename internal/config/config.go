package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	StoreAPI    StoreAPIConfig
	LogLevel    string
}

type StoreAPIConfig struct {
	BaseURL        string
	Token          string
	TimeoutSeconds int
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("STORE_API_TIMEOUT_SECONDS", "30")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := strconv.Atoi(getEnvOrViper("STORE_API_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("STORE_API_TIMEOUT_SECONDS must be an integer: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		StoreAPI: StoreAPIConfig{
			BaseURL:        getEnvOrViper("STORE_API_BASE_URL", ""),
			Token:          getEnvOrViper("STORE_API_TOKEN", ""),
			TimeoutSeconds: timeout,
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.StoreAPI.BaseURL == "" {
		return nil, fmt.Errorf("STORE_API_BASE_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

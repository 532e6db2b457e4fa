package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Upstream UpstreamConfig
	Server   ServerConfig
	UPI      UPIConfig
}

// UpstreamConfig holds the MyChits core API configuration
type UpstreamConfig struct {
	BaseURL string
}

// ServerConfig holds local HTTP server configuration
type ServerConfig struct {
	Port string
}

// UPIConfig holds the payment collection account configuration
type UPIConfig struct {
	PayeeVPA  string
	PayeeName string
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("Server.Port", "8080")
	viper.SetDefault("UPI.PayeeName", "MyChits")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("upstream base URL is required")
	}

	return &cfg, nil
}

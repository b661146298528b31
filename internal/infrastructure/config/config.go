package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/roshan-1001/credence-realtor-sub001/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port            string
	UpstreamBaseURL string
	UpstreamAPIKey  string
	UpstreamTimeout time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", ""),
		UpstreamAPIKey:  getEnv("UPSTREAM_API_KEY", ""),
		UpstreamTimeout: time.Second * time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 10)),
	}
}

// GetPort returns the HTTP listen port.
func (c *Config) GetPort() string {
	return c.Port
}

// GetUpstreamBaseURL returns the provider base URL; empty means the
// static dataset serves listing queries instead.
func (c *Config) GetUpstreamBaseURL() string {
	return c.UpstreamBaseURL
}

// GetUpstreamAPIKey returns the provider API key.
func (c *Config) GetUpstreamAPIKey() string {
	return c.UpstreamAPIKey
}

// GetUpstreamTimeout returns the per-request bound for upstream calls.
func (c *Config) GetUpstreamTimeout() time.Duration {
	return c.UpstreamTimeout
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

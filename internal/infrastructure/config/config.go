package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL               string
	RefreshTokenExpiry       time.Duration
	PasswordResetTokenExpiry time.Duration
	FanoutConcurrency        int
	UploadDir                string
	UploadBaseURL            string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		AppBaseURL:               getEnv("APP_BASE_URL", "http://localhost:8080"),
		RefreshTokenExpiry:       time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		PasswordResetTokenExpiry: time.Minute * time.Duration(getEnvAsInt("PASSWORD_RESET_TOKEN_EXPIRY_MINUTES", 15)),
		FanoutConcurrency:        getEnvAsInt("NOTIFICATION_FANOUT_CONCURRENCY", 8),
		UploadDir:                getEnv("UPLOAD_DIR", "./uploads"),
		UploadBaseURL:            getEnv("UPLOAD_BASE_URL", getEnv("APP_BASE_URL", "http://localhost:8080")),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

// GetPasswordResetTokenExpiry returns the expiry duration for password reset tokens.
func (c *Config) GetPasswordResetTokenExpiry() time.Duration {
	return c.PasswordResetTokenExpiry
}

// GetFanoutConcurrency returns the notification fan-out concurrency bound.
func (c *Config) GetFanoutConcurrency() int {
	return c.FanoutConcurrency
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

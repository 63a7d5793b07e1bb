package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const devFallbackSecret = "dev-insecure-secret-change"

// Config holds the environment-backed settings for the service.
type Config struct {
	Port        string
	DBDSN       string
	AutoMigrate bool
	JWTSecret   string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendOrigin     string

	AppEnv   string
	LogLevel string
}

func loadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "8081"),
		DBDSN:       getEnv("DB_DSN", ""),
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		JWTSecret:   getEnv("JWT_SECRET", devFallbackSecret),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8081/api/auth/google/callback"),
		FrontendOrigin:     getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),

		AppEnv:   strings.ToLower(getEnv("APP_ENV", "development")),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate collects every configuration problem instead of stopping at the
// first one.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}
	if c.DBDSN == "" {
		problems = append(problems, "DB_DSN is required (postgres DSN)")
	}
	if c.AppEnv == "production" && c.JWTSecret == devFallbackSecret {
		problems = append(problems, "JWT_SECRET must be set in production")
	}
	if (c.GoogleClientID == "") != (c.GoogleClientSecret == "") {
		problems = append(problems, "GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set together")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}

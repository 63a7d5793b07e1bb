package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Port:      "8081",
		DBDSN:     "host=localhost user=fintrack dbname=fintrack",
		JWTSecret: "unit-test-secret",
		AppEnv:    "development",
		LogLevel:  "info",
	}
}

func TestConfigValidateOK(t *testing.T) {
	require.NoError(t, validTestConfig().Validate())
}

func TestConfigValidateCollectsProblems(t *testing.T) {
	c := validTestConfig()
	c.Port = "not-a-port"
	c.DBDSN = ""
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
	assert.Contains(t, err.Error(), "DB_DSN is required")
}

func TestConfigValidateProductionSecret(t *testing.T) {
	c := validTestConfig()
	c.AppEnv = "production"
	c.JWTSecret = devFallbackSecret
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "JWT_SECRET"))
}

func TestConfigValidateGooglePair(t *testing.T) {
	c := validTestConfig()
	c.GoogleClientID = "client-id-only"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET")
}

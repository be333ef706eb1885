package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DEV_TOKENS", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRY", "not-a-number")
	t.Setenv("SEED_ON_STARTUP", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int64(24*60*60), cfg.JWTExpiry)
	assert.False(t, cfg.SeedOnStartup)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.False(t, cfg.DevTokensEnabled())
}

func TestLoadRequiresSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", defaultJWTSecret)
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cr3t")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
}

func TestDevTokensEnabled(t *testing.T) {
	assert.True(t, (&Config{Environment: "development", DevTokens: true}).DevTokensEnabled())
	assert.False(t, (&Config{Environment: "development"}).DevTokensEnabled())
	assert.False(t, (&Config{Environment: "production", DevTokens: true}).DevTokensEnabled())
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{Environment: "development"}).IsDevelopment())
	assert.False(t, (&Config{Environment: "production"}).IsDevelopment())
}

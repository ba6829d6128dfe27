package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.NotEmpty(t, cfg.Database.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BLOG_SERVER_PORT", "9090")
	t.Setenv("BLOG_SERVER_LOG_LEVEL", "debug")
	t.Setenv("BLOG_AUTH_JWT_SECRET", "an-actual-secret-set-by-the-deployment")
	t.Setenv("BLOG_DATABASE_URL", "postgres://blog:blog@db:5432/blog")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "an-actual-secret-set-by-the-deployment", cfg.Auth.JWTSecret)
	assert.Equal(t, "postgres://blog:blog@db:5432/blog", cfg.Database.URL)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("BLOG_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/concord-mediation/concord/internal/app"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := app.LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

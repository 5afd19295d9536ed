package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.False(t, cfg.Production())
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, 30, cfg.Postgres.MaxOpen)
	require.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	require.Equal(t, "jobify-avatars", cfg.Storage.BucketAvatars)
	require.Equal(t, 24*time.Hour, cfg.Security.SessionTTL)
	require.Equal(t, "jobify_session", cfg.Security.CookieName)
	require.EqualValues(t, 3, cfg.Security.HashTime)
	require.EqualValues(t, 65536, cfg.Security.HashMemory)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JOBIFY_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.True(t, cfg.Production())
}

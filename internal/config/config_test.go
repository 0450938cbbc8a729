package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("FETCH_TIMEOUT", "")
	t.Setenv("MAX_HASHTAGS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.MongoURI)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "dev", cfg.AppEnv)
	require.Equal(t, 15*time.Second, cfg.FetchTimeout)
	require.Equal(t, 3, cfg.MaxHashtags)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("MAX_HASHTAGS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, 5*time.Second, cfg.FetchTimeout)
	require.Equal(t, 5, cfg.MaxHashtags)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("FETCH_TIMEOUT", "10s")
	t.Setenv("MAX_HASHTAGS", "zero")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("MAX_HASHTAGS", "0")
	_, err = Load()
	require.Error(t, err)
}

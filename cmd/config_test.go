package main

import (
	"testing"

	"github.com/assettrack/subscription-api/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "local")
		t.Setenv("ALLOWED_ORIGINS", "")

		cfg, err := getConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, api.LOCAL, cfg.Env)
		assert.Equal(t, "0.0.0.0", cfg.Host)
		assert.Equal(t, "8080", cfg.Port)
		assert.Empty(t, cfg.AllowedOrigins)
	})

	t.Run("prod with origins", func(t *testing.T) {
		t.Setenv("ENV", "PROD")
		t.Setenv("PORT", "9000")
		t.Setenv("ALLOWED_ORIGINS", "https://app.example, https://www.example ,")

		cfg, err := getConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, api.PROD, cfg.Env)
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, []string{"https://app.example", "https://www.example"}, cfg.AllowedOrigins)
	})

	t.Run("unknown environment", func(t *testing.T) {
		t.Setenv("ENV", "staging")

		_, err := getConfigFromEnv()
		assert.Error(t, err)
	})
}

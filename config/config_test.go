package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.Nil(t, cfg.Pricing.Containers)
		assert.Equal(t, "40hc", cfg.Pricing.DefaultContainer)
		assert.Equal(t, 30*time.Second, cfg.Pricing.CatalogCacheTTL)
		assert.Equal(t, 100, cfg.Pricing.ScenarioListLimit)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, "seller", cfg.Auth.SellerUsername)
		assert.Equal(t, 8*time.Hour, cfg.Auth.AccessTokenTTL)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "container_quote", cfg.Database.DatabaseName)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("CONTAINER_CAPACITIES", "20ft=28.2,40hc=67.2,45hc=76")
		_ = os.Setenv("DEFAULT_CONTAINER", "20ft")
		_ = os.Setenv("AUTH_ENABLED", "false")
		_ = os.Setenv("SELLER_PASSWORD_HASH", "$2a$10$abc")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, map[string]float64{"20ft": 28.2, "40hc": 67.2, "45hc": 76}, cfg.Pricing.Containers)
		assert.Equal(t, "20ft", cfg.Pricing.DefaultContainer)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, "$2a$10$abc", cfg.Auth.SellerPasswordHash)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})
}

func TestParseContainerCapacities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]float64
	}{
		{name: "empty", input: "", expected: nil},
		{name: "whitespace", input: " 20ft = 28.2 , 40hc=67.2 ", expected: map[string]float64{"20ft": 28.2, "40hc": 67.2}},
		{name: "skips malformed entries", input: "20ft,40hc=abc,45hc=-1,=5,40ft=58", expected: map[string]float64{"40ft": 58}},
		{name: "nothing valid", input: "garbage", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseContainerCapacities(tt.input))
		})
	}
}

func TestParseCORSOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, parseCORSOrigins(""))
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://127.0.0.1:3000", "https://quotes.example.com"},
		parseCORSOrigins(" https://quotes.example.com , "),
	)
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("loads file without overriding environment", func(t *testing.T) {
		os.Clearenv()
		defer os.Clearenv()
		_ = os.Setenv("PORT", "7000")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("PORT=9000\nDEFAULT_CONTAINER=20ft\n"), 0o600))

		require.NoError(t, LoadDotEnv(path))
		cfg := Load()

		assert.Equal(t, "7000", cfg.Server.Port)
		assert.Equal(t, "20ft", cfg.Pricing.DefaultContainer)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	})
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv restores the variables when the test ends.
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("CORS_ORIGIN", "https://bazaar.pk")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("SESSION_TTL", "30m")
		t.Setenv("SEED_DEMO_ORDERS", "false")
		t.Setenv("SHIPPING_FEE", "300")
		t.Setenv("GEMINI_API_KEY", "gemini-key")
		t.Setenv("GEMINI_MODEL", "gemini-test")
		t.Setenv("CATALOG_SOURCE", "postgres")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "https://bazaar.pk", cfg.CORSOrigin)
		assert.Equal(t, "secret", cfg.JWTSecret)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.False(t, cfg.SeedDemoOrders)
		assert.Equal(t, int64(300), cfg.ShippingFee)
		assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
		assert.Equal(t, "gemini-test", cfg.GeminiModel)
		assert.Equal(t, CatalogSourcePostgres, cfg.CatalogSource)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
	})

	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{
			"APP_PORT", "APP_ENV", "CORS_ORIGIN", "SESSION_TTL", "SEED_DEMO_ORDERS",
			"SHIPPING_FEE", "GEMINI_MODEL", "CATALOG_SOURCE",
		} {
			t.Setenv(key, "")
		}

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.True(t, cfg.SeedDemoOrders)
		assert.Equal(t, int64(250), cfg.ShippingFee)
		assert.Equal(t, CatalogSourceMemory, cfg.CatalogSource)
	})

	t.Run("Invalid values fall back", func(t *testing.T) {
		t.Setenv("SHIPPING_FEE", "-5")
		t.Setenv("SESSION_TTL", "soon")
		t.Setenv("CATALOG_SOURCE", "")

		cfg := LoadConfig()

		assert.Equal(t, int64(250), cfg.ShippingFee)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	})
}

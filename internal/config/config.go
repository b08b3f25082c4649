package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceMemory   = "memory"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	AppPort    string
	AppEnv     string
	CORSOrigin string

	JWTSecret         string
	InternalSecretKey string
	SessionTTL        time.Duration
	SeedDemoOrders    bool

	ShippingFee int64

	GeminiAPIKey string
	GeminiModel  string

	CatalogSource string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppEnv:            getEnv("APP_ENV", "development"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "http://localhost:3000"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		InternalSecretKey: os.Getenv("INTERNAL_SECRET_KEY"),
		SessionTTL:        getDuration("SESSION_TTL", 2*time.Hour),
		SeedDemoOrders:    getBool("SEED_DEMO_ORDERS", true),
		ShippingFee:       getInt64("SHIPPING_FEE", 250),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		CatalogSource:     getEnv("CATALOG_SOURCE", CatalogSourceMemory),
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
	}

	if cfg.CatalogSource == CatalogSourcePostgres && cfg.DBHost == "" {
		log.Fatal("CATALOG_SOURCE=postgres requires DB_* environment variables")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

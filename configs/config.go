package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Host string
	Port string

	CatalogDBSource string
	CartDBSource    string
	// Read for parity with the libSQL deployment surface; the sqlite
	// driver has no use for it.
	DBAuthToken string

	CORSOrigin string
	LogLevel   string

	// Bound on a single remote cart-store call before failover engages.
	CartRemoteTimeout time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:               getEnv("APP_ENV", "development"),
		Host:              getEnv("HOST", ""),
		Port:              getEnv("PORT", "3000"),
		CatalogDBSource:   getEnv("CATALOG_DATABASE_URL", "pizza.sqlite"),
		CartDBSource:      getEnv("CART_DATABASE_URL", "cart.sqlite"),
		DBAuthToken:       os.Getenv("DATABASE_AUTH_TOKEN"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CartRemoteTimeout: time.Duration(getEnvInt("CART_REMOTE_TIMEOUT_MS", 2000)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

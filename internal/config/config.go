package config

import (
	"os"
	"strings"
	"time"
)

// Config holds environment-driven configuration shared by every binary.
// A binary only reads the fields it needs.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	// Upstream base URLs used by the gateway.
	CustomerServiceURL string
	BookServiceURL     string
	CartServiceURL     string
	UpstreamTimeout    time.Duration

	CORSAllowOrigins string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:        getenv("BOOKSTORE_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		CustomerServiceURL: getenv("CUSTOMER_SERVICE_URL", "http://localhost:8002"),
		BookServiceURL:     getenv("BOOK_SERVICE_URL", "http://localhost:8003"),
		CartServiceURL:     getenv("CART_SERVICE_URL", "http://localhost:8004"),
		UpstreamTimeout:    parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),

		CORSAllowOrigins: getenv("CORS_ALLOW_ORIGINS", "*"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Development fallbacks keep a bare
// `go run` working; production deployments must set JWT_SECRET.
type Config struct {
	Env         string
	Port        string
	JWTSecret   string
	JWTLifetime time.Duration
	FrontendURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	GCSBucket          string
	GCSCredentialsFile string
}

// Load reads configs/.env if present, then the environment
func Load() Config {
	_ = godotenv.Load("configs/.env")

	return Config{
		Env:         envStr("APP_ENV", "local"),
		Port:        envStr("PORT", "8080"),
		JWTSecret:   envStr("JWT_SECRET", "default_super_secret_key"),
		JWTLifetime: envDur("JWT_LIFETIME", 24*time.Hour),
		FrontendURL: envStr("FRONTEND_URL", "http://localhost:3000"),

		SMTPHost:     envStr("SMTP_HOST", "localhost"),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPUsername: envStr("SMTP_USERNAME", ""),
		SMTPPassword: envStr("SMTP_PASSWORD", ""),
		EmailFrom:    envStr("EMAIL_USER", "support@automart.local"),

		GCSBucket:          envStr("GCS_BUCKET", "automart-car-images"),
		GCSCredentialsFile: envStr("GCS_CREDENTIALS_FILE", ""),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

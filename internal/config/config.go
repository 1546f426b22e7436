package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment configuration consumed by the service.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	FrontendURL string
	LogLevel    string

	// JWT / security
	JWTSecret    string
	JWTExpiresIn string // seconds or "<amount><unit>" with s/m/h/d
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment, after best-effort loading a
// local .env file.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Port:         getenv("PORT", "5000"),
		DatabaseURL:  getenv("DATABASE_URL", ""),
		RedisURL:     getenv("REDIS_URL", ""),
		FrontendURL:  getenv("FRONTEND_URL", "http://localhost:5173"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: os.Getenv("JWT_EXPIRES_IN"),
	}
}

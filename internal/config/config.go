package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the configuration values for the application.
// It is constructed once at startup and passed to the components
// that need it; nothing reads the environment after Load returns.
type Config struct {
	ListenPort  string
	DatabaseURL string
	AdminEmail  string
	AdminPasswd string
	AdminRole   string
	AppName     string
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing required values are a startup error, never a
// request-time one.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load(".env")

	cfg := &Config{
		ListenPort:  getEnv("LISTEN_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AdminEmail:  os.Getenv("ADMIN_EMAIL"),
		AdminPasswd: os.Getenv("ADMIN_PASSWD"),
		AdminRole:   getEnv("ADMIN_ROLE", "superadmin"),
		AppName:     getEnv("APP_NAME", "MedBid"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL is required")
	}
	if cfg.AdminPasswd == "" {
		return nil, fmt.Errorf("ADMIN_PASSWD is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

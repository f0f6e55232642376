package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string
	StaticDir   string
	CORSOrigins []string

	EmailProvider    string
	EmailFromAddress string
	EmailFromName    string
	AWSRegion        string
	AWSAccessKeyID   string
	AWSSecretKey     string
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file when not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables, so a missing .env
	// file is only worth a warning elsewhere.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:      env,
		Port:             os.Getenv("PORT"),
		StaticDir:        os.Getenv("STATIC_DIR"),
		EmailProvider:    os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:    os.Getenv("EMAIL_FROM_NAME"),
		AWSRegion:        os.Getenv("AWS_REGION"),
		AWSAccessKeyID:   os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:     os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "web/static"
	}
	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		cfg.CORSOrigins = strings.Split(s, ",")
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration (application connection, owner-scoped access)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Elevated connection used only by the admin endpoints. Optional: when
	// empty the admin endpoints report a configuration error at request time.
	ServiceDatabaseURL string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// Shared secret for the admin list/export endpoints. Optional: when empty
	// those endpoints reject every request as unauthorized.
	AdminPassword string

	// Registration behavior
	RequireEmailConfirmation bool

	// CORS
	CORSAllowOrigins []string

	// Email (optional; verification links are logged when unset)
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string
	AppBaseURL   string
}

// LoadConfig creates a new Config instance from the environment. A .env file
// in the working directory is honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		ServiceDatabaseURL: os.Getenv("SERVICE_DATABASE_URL"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     os.Getenv("REDIS_PORT"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       0,

		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailFrom:    os.Getenv("EMAIL_FROM"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:5173"),
	}

	if v := os.Getenv("REQUIRE_EMAIL_CONFIRMATION"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUIRE_EMAIL_CONFIRMATION value %q: %w", v, err)
		}
		cfg.RequireEmailConfirmation = parsed
	}

	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
			}
		}
	} else {
		cfg.CORSAllowOrigins = []string{"http://localhost:5173"}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

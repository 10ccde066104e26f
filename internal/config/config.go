// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the service needs to run.
type Config struct {
	Environment string `validate:"required,oneof=development production"`
	Port        string `validate:"required"`

	DatabaseURL   string `validate:"required"`
	MigrationsDir string `validate:"required"`

	// Admin login. The password is stored as a bcrypt hash; the old
	// hard-coded Basic-Auth credentials are gone.
	AdminUsername     string `validate:"required"`
	AdminPasswordHash string `validate:"required"`
	JWTSecret         string `validate:"required,min=16"`

	// SMTP settings for the reschedule notification e-mail. Optional: when
	// Host is empty the mailer is disabled and sends become no-ops.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string `validate:"omitempty,email"`

	CORSAllowedOrigins []string
}

var validate = validator.New()

// Load reads configuration from the environment. A .env file is honoured
// when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	smtpPort, err := intEnv("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:       getEnv("ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "migrations"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          smtpPort,
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		MailFrom:          os.Getenv("MAIL_FROM"),
		CORSAllowedOrigins: []string{
			getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

// Package config reads process settings from the environment and the site profile from TOML.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

type Admin struct {
	Username string
	Password string
}

// Config holds everything read from the environment.
type Config struct {
	Port       string
	Mode       string
	DBPath     string
	SiteConfig string
	LogLevel   string
	AlertTTL   time.Duration
	SMTP       SMTP
	Admin      Admin
}

// FromEnv reads the environment, filling development defaults for anything unset.
// A .env file is picked up by godotenv/autoload in the main package.
func FromEnv() Config {
	cfg := Config{
		Port:       getenv("PORT", "8080"),
		Mode:       getenv("GIN_MODE", "debug"),
		DBPath:     getenv("DB_PATH", "portfolio.db"),
		SiteConfig: os.Getenv("SITE_CONFIG"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		AlertTTL:   30 * time.Minute,
		SMTP: SMTP{
			Host: getenv("SMTP_HOST", "smtp.gmail.com"),
			Port: getenv("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   os.Getenv("TO_EMAIL"),
		},
		Admin: Admin{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	if v := os.Getenv("ALERT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Warn().Str("value", v).Msg("invalid ALERT_TTL, using default")
		} else {
			cfg.AlertTTL = d
		}
	}

	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
		log.Warn().Msg("using default admin username, set ADMIN_USERNAME")
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = "admin123"
		log.Warn().Msg("using default admin password, set ADMIN_PASSWORD")
	}
	return cfg
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package config reads the process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

type Config struct {
	Port string

	DB DBConfig

	JWTSecret       string
	GoogleClientID  string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	CookieDomain   string
	CookieSameSite http.SameSite
	CookieSecure   bool
	AllowedOrigins []string

	// OAuthRedirectURL is where the browser lands after a Google sign-in.
	OAuthRedirectURL string

	// Location defines which calendar day is "today".
	Location *time.Location
	LogLevel slog.Level
}

type DBConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// ConnString returns URL when set, otherwise builds one from the parts.
func (c DBConfig) ConnString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.User, c.Password, c.Host, c.Port, c.Name)
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port: env("PORT", "8080"),
		DB: DBConfig{
			URL:      getenv("DATABASE_URL"),
			Host:     env("POSTGRES_HOST", "localhost"),
			Port:     env("POSTGRES_PORT", "5432"),
			User:     getenv("POSTGRES_USER"),
			Password: getenv("POSTGRES_PASSWORD"),
			Name:     getenv("POSTGRES_DB"),
		},
		JWTSecret:        getenv("JWT_SECRET"),
		GoogleClientID:   getenv("GOOGLE_CLIENT_ID"),
		CookieDomain:     getenv("COOKIE_DOMAIN"),
		AllowedOrigins:   splitList(env("ALLOWED_ORIGINS", "*")),
		OAuthRedirectURL: env("OAUTH_REDIRECT_URL", "/"),
	}

	var err error
	if cfg.AccessTokenTTL, err = time.ParseDuration(env("ACCESS_TOKEN_TTL", "15m")); err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
	}
	if cfg.RefreshTokenTTL, err = time.ParseDuration(env("REFRESH_TOKEN_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("invalid REFRESH_TOKEN_TTL: %w", err)
	}
	if cfg.Location, err = time.LoadLocation(env("TIMEZONE", "UTC")); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	if cfg.CookieSameSite, err = parseSameSite(env("COOKIE_SAMESITE", "lax")); err != nil {
		return nil, err
	}
	if cfg.CookieSecure, err = strconv.ParseBool(env("COOKIE_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Today returns the current calendar day in the configured location.
func (c *Config) Today() domain.Date {
	return domain.DateOf(time.Now().In(c.Location))
}

func parseSameSite(v string) (http.SameSite, error) {
	switch strings.ToLower(v) {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return 0, fmt.Errorf("invalid COOKIE_SAMESITE %q", v)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Package config loads daemon settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the daemon.
type Config struct {
	Port int

	DBPath     string
	SessionDir string
	SessionKey string // hex-encoded 32-byte key; empty means use/create SessionDir/key

	JWTSecret string
	TokenTTL  time.Duration

	UnitPrice int64

	Catalog CatalogConfig

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RabbitMQURL string

	LogLevel  string
	LogFormat string
}

type CatalogConfig struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	Region       string
	Timeout      time.Duration
	CacheTTL     time.Duration
}

// Load reads .env (if present) and then the environment. Unset variables take
// their defaults; malformed numbers and durations are errors.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	p := &parser{}
	cfg := &Config{
		Port:       p.int("APP_PORT", 8080),
		DBPath:     getenv("DB_PATH", "./data/cinebook.db"),
		SessionDir: getenv("SESSION_DIR", "./data/session"),
		SessionKey: os.Getenv("SESSION_KEY"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   p.duration("TOKEN_TTL", 24*time.Hour),
		UnitPrice:  int64(p.int("UNIT_PRICE", 75000)),
		Catalog: CatalogConfig{
			APIKey:       os.Getenv("TMDB_API_KEY"),
			BaseURL:      getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			ImageBaseURL: getenv("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p"),
			Language:     os.Getenv("TMDB_LANGUAGE"),
			Region:       os.Getenv("TMDB_REGION"),
			Timeout:      p.duration("CATALOG_TIMEOUT", 10*time.Second),
			CacheTTL:     p.duration("CATALOG_CACHE_TTL", 5*time.Minute),
		},
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       p.int("REDIS_DB", 0),
		RabbitMQURL:   os.Getenv("RABBITMQ_URL"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
	}
	if p.err != nil {
		return nil, p.err
	}

	if cfg.UnitPrice <= 0 {
		return nil, fmt.Errorf("UNIT_PRICE must be positive, got %d", cfg.UnitPrice)
	}
	if cfg.JWTSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
		slog.Warn("JWT_SECRET not set, tokens will not survive a restart")
	}
	return cfg, nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parser keeps the first conversion error.
type parser struct {
	err error
}

func (p *parser) int(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid int for %s: %q", key, s)
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid duration for %s: %q", key, s)
	}
	return d
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate jwt secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/generator"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       slog.Level
	DefaultLength  int
	RateLimitRPS   float64
	RateLimitBurst int
	AuthSecret     string
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
		DefaultLength:  generator.ClampLength(getEnvInt("DEFAULT_LENGTH", generator.DefaultLength)),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
		AuthSecret:     os.Getenv("AUTH_SECRET"),
	}

	if cfg.Env == "production" && cfg.AuthSecret == "" {
		slog.Warn("AUTH_SECRET is not set, the generate API is open to anyone")
	}

	return cfg
}

// NewLogger builds the process logger at the configured level.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring invalid integer env var", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring invalid number env var", "key", key, "value", v)
		return fallback
	}
	return f
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package config loads the exobio CLI settings from the environment.
// Command-line flags override the loaded values.
package config

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/exobio/seedfetch"
	"github.com/shouni/go-utils/envutil"
)

// Environment variable names.
const (
	EnvSeedURL      = "EXOBIO_SEED_URL"
	EnvHTTPTimeout  = "EXOBIO_HTTP_TIMEOUT"
	EnvRateInterval = "EXOBIO_RATE_INTERVAL"
	EnvRateBurst    = "EXOBIO_RATE_BURST"
	EnvConcurrency  = "EXOBIO_CONCURRENCY"
	EnvLogLevel     = "EXOBIO_LOG_LEVEL"
)

// Defaults used when a variable is unset or unparsable.
const (
	DefaultHTTPTimeout  = seedfetch.DefaultTimeout
	DefaultRateInterval = 500 * time.Millisecond
	DefaultRateBurst    = 2
	DefaultConcurrency  = 4
	DefaultLogLevel     = slog.LevelInfo
)

// Config holds the CLI settings.
type Config struct {
	SeedURL      string
	HTTPTimeout  time.Duration
	RateInterval time.Duration // 0 disables fetch rate limiting
	RateBurst    int
	Concurrency  int
	LogLevel     slog.Level
}

// Load reads the environment. Invalid values fall back to their defaults.
func Load() *Config {
	return &Config{
		SeedURL:      nonEmpty(envutil.GetEnv(EnvSeedURL, ""), seedfetch.DefaultURL),
		HTTPTimeout:  duration(envutil.GetEnv(EnvHTTPTimeout, ""), DefaultHTTPTimeout),
		RateInterval: duration(envutil.GetEnv(EnvRateInterval, ""), DefaultRateInterval),
		RateBurst:    positive(envutil.GetEnv(EnvRateBurst, ""), DefaultRateBurst),
		Concurrency:  positive(envutil.GetEnv(EnvConcurrency, ""), DefaultConcurrency),
		LogLevel:     level(envutil.GetEnv(EnvLogLevel, ""), DefaultLogLevel),
	}
}

func nonEmpty(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}

	return s
}

// duration parses a non-negative time.Duration ("750ms", "2s").
func duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d < 0 {
		return def
	}

	return d
}

// positive parses an integer >= 1.
func positive(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}

	return n
}

// level parses a slog level name ("debug", "INFO", "warn+2").
func level(s string, def slog.Level) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return def
	}

	return l
}

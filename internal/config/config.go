package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL      string
	VerificationCode string
	Port             string
	BrowserBin       string
	BrowserHeadless  bool
	BrowserNoSandbox bool
	NavTimeout       time.Duration
	NavMaxRetries    int
	RateLimitIngest  RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
// DATABASE_URL wins when set; otherwise a DSN is assembled from the discrete
// DB_HOST / DB_USER / DB_PASSWORD / DB_NAME variables.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		VerificationCode: os.Getenv("VERIFICATION_CODE"),
		Port:             getEnv("PORT", "8080"),
		BrowserBin:       os.Getenv("BROWSER_BIN"),
		BrowserHeadless:  parseBool(getEnv("BROWSER_HEADLESS", "true"), true),
		BrowserNoSandbox: parseBool(getEnv("BROWSER_NO_SANDBOX", "false"), false),
		NavTimeout:       parseDuration(getEnv("NAV_TIMEOUT", "60s"), 60*time.Second),
		NavMaxRetries:    parseInt(getEnv("NAV_MAX_RETRIES", "3"), 3),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = dsnFromParts()
	}
	if cfg.VerificationCode == "" {
		return nil, fmt.Errorf("VERIFICATION_CODE must be set")
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_INGEST", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_INGEST value: %w", err)
	}
	cfg.RateLimitIngest = rl

	return cfg, nil
}

func dsnFromParts() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   host,
		Path:   "/" + getEnv("DB_NAME", "postgres"),
	}
	user := getEnv("DB_USER", "postgres")
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseInt(input string, fallback int) int {
	value, err := strconv.Atoi(input)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseBool(input string, fallback bool) bool {
	value, err := strconv.ParseBool(input)
	if err != nil {
		return fallback
	}
	return value
}

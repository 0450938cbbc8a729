package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort         = "5000"
	defaultFetchTimeout = "15s"
	defaultMaxHashtags  = "3"
)

// Config holds process-level settings read from the environment.
// MongoURI may be empty: the service then runs in permanently
// disconnected mode and serves fallback data.
type Config struct {
	MongoURI     string
	Port         string
	FetchTimeout time.Duration
	MaxHashtags  int
	AppEnv       string
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.MongoURI = strings.TrimSpace(os.Getenv("MONGODB_URI"))
	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	var err error
	cfg.FetchTimeout, err = parseDurationEnv("FETCH_TIMEOUT", defaultFetchTimeout)
	if err != nil {
		return nil, err
	}

	cfg.MaxHashtags, err = parseIntEnv("MAX_HASHTAGS", defaultMaxHashtags)
	if err != nil {
		return nil, err
	}
	if cfg.MaxHashtags < 1 {
		return nil, fmt.Errorf("MAX_HASHTAGS must be at least 1, got %d", cfg.MaxHashtags)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}

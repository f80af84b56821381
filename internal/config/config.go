// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the collector and API.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	DBURL string

	VLRBaseURL     string
	VLRUserAgent   string
	VLRMinGap      time.Duration
	VLRHTTPTimeout time.Duration

	DetailLimit int
	LogLevel    string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	// Exports of large events can take a while to stream.
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	minGap, err := time.ParseDuration(getEnv("VLR_MIN_GAP", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse VLR_MIN_GAP: %w", err)
	}
	if minGap <= 0 {
		return Config{}, fmt.Errorf("VLR_MIN_GAP must be > 0")
	}
	httpTimeout, err := time.ParseDuration(getEnv("VLR_HTTP_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse VLR_HTTP_TIMEOUT: %w", err)
	}
	if httpTimeout <= 0 {
		return Config{}, fmt.Errorf("VLR_HTTP_TIMEOUT must be > 0")
	}

	detailLimit, err := getEnvAsInt("DETAIL_LIMIT", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse DETAIL_LIMIT: %w", err)
	}
	if detailLimit < 0 {
		return Config{}, fmt.Errorf("DETAIL_LIMIT must be >= 0")
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "vlrscout"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		DBURL:          getEnv("DATABASE_URL", ""),
		VLRBaseURL:     strings.TrimRight(getEnv("VLR_BASE_URL", "https://www.vlr.gg"), "/"),
		VLRUserAgent:   getEnv("VLR_USER_AGENT", ""),
		VLRMinGap:      minGap,
		VLRHTTPTimeout: httpTimeout,
		DetailLimit:    detailLimit,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}, nil
}

func parseAppEnv(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case EnvDev:
		return EnvDev, nil
	case EnvStage:
		return EnvStage, nil
	case EnvProd:
		return EnvProd, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
